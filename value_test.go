package jeyson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKindOfNilIsNull(t *testing.T) {
	var v *Value
	assert.Equal(t, Null, v.Kind())
	assert.True(t, v.IsNull())
}

func TestValuePredicates(t *testing.T) {
	assert.True(t, NewNull().IsNull())
	assert.True(t, NewBool(true).IsBool())
	assert.True(t, NewInt(-1).IsInteger())
	assert.True(t, NewUint(1).IsUInteger())
	assert.True(t, NewReal(1.5).IsReal())
	assert.True(t, NewString("s").IsString())
	assert.True(t, NewArray().IsArray())
	assert.True(t, NewObject().IsObject())
}

func TestValueIsNumeric(t *testing.T) {
	assert.True(t, NewInt(1).IsNumeric())
	assert.True(t, NewUint(1).IsNumeric())
	assert.True(t, NewReal(1).IsNumeric())
	assert.False(t, NewBool(true).IsNumeric())
	assert.False(t, NewString("x").IsNumeric())
}

func TestFindPair(t *testing.T) {
	obj := NewObject()
	_, _ = obj.Key("a")
	_, _ = obj.Key("b")
	assert.Equal(t, 0, obj.findPair("a"))
	assert.Equal(t, 1, obj.findPair("b"))
	assert.Equal(t, -1, obj.findPair("c"))
}
