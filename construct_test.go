package jeyson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStringN(t *testing.T) {
	v := NewStringN("hello\x00world", 7)
	s, err := v.GetString()
	require.Nil(t, err)
	assert.Equal(t, "hello\x00w", s)
}

func TestNewStringNClampsToBounds(t *testing.T) {
	assert.Equal(t, "", NewStringN("abc", -1).stringValue)
	assert.Equal(t, "abc", NewStringN("abc", 100).stringValue)
}

func TestDeepCopyIsIndependent(t *testing.T) {
	orig := NewArray()
	_ = orig.PushBack(NewInt(1))

	cp := orig.DeepCopy()
	_ = cp.PushBack(NewInt(2))

	assert.Equal(t, 1, orig.Size())
	assert.Equal(t, 2, cp.Size())
}

func TestDeepCopyNil(t *testing.T) {
	var v *Value
	cp := v.DeepCopy()
	assert.True(t, cp.IsNull())
}

func TestDeepCopyObjectIsIndependent(t *testing.T) {
	orig := NewObject()
	inner, _ := orig.Key("a")
	inner.MoveFrom(NewInt(1))

	cp := orig.DeepCopy()
	field, _ := cp.Field("a")
	field.MoveFrom(NewInt(2))

	origField, _ := orig.Field("a")
	n, _ := origField.GetInt64()
	assert.Equal(t, int64(1), n)
}

func TestMoveFrom(t *testing.T) {
	dst := NewNull()
	src := NewInt(42)
	dst.MoveFrom(src)

	n, err := dst.GetInt64()
	require.Nil(t, err)
	assert.Equal(t, int64(42), n)
	assert.True(t, src.IsNull())
}

func TestMoveFromNil(t *testing.T) {
	dst := NewInt(1)
	dst.MoveFrom(nil)
	assert.True(t, dst.IsNull())
}
