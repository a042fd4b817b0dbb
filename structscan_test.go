package jeyson

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() *parseContext {
	return &parseContext{policy: Strict(), cb: NewCallbacks(), logger: log.NewNopLogger()}
}

func TestAdvanceDelimiters(t *testing.T) {
	c := NewCursor(" [ ")
	assert.True(t, AdvanceBeginArray(c))
	assert.True(t, c.AtEnd())

	c = NewCursor("x")
	assert.False(t, AdvanceEndArray(c))
	assert.Equal(t, 0, c.Pos)
}

func TestAdvanceArrayEmpty(t *testing.T) {
	ctx := newTestContext()
	var begins, ends int
	ctx.cb.OnBeginArray = func() { begins++ }
	ctx.cb.OnEndArray = func() { ends++ }

	c := NewCursor("[ ]")
	err := ctx.AdvanceArray(c)
	require.Nil(t, err)
	assert.Equal(t, 1, begins)
	assert.Equal(t, 1, ends)
	assert.True(t, c.AtEnd())
}

func TestAdvanceArrayElements(t *testing.T) {
	ctx := newTestContext()
	var numbers []interface{}
	ctx.cb.OnNumber = func(n interface{}) { numbers = append(numbers, n) }

	c := NewCursor("[1, 2, 3]")
	err := ctx.AdvanceArray(c)
	require.Nil(t, err)
	assert.Equal(t, []interface{}{uint64(1), uint64(2), uint64(3)}, numbers)
}

func TestAdvanceArrayNotAnArrayIsRecoverable(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor("123")
	err := ctx.AdvanceArray(c)
	assert.Nil(t, err)
	assert.Equal(t, 0, c.Pos)
}

func TestAdvanceArrayMalformedFractionIsBadJSONSequence(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor("[3.]")
	err := ctx.AdvanceArray(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadJSONSequence, err.Code)
}

func TestAdvanceArrayUnclosedFails(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor("[1, 2")
	err := ctx.AdvanceArray(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrUnbalancedArrayBracket, err.Code)
}

func TestAdvanceMemberNameAndValue(t *testing.T) {
	ctx := newTestContext()
	var names []string
	var numbers []interface{}
	ctx.cb.OnMemberName = func(n string) { names = append(names, n) }
	ctx.cb.OnNumber = func(n interface{}) { numbers = append(numbers, n) }

	c := NewCursor(`"age": 30`)
	err := ctx.AdvanceMember(c)
	require.Nil(t, err)
	assert.Equal(t, []string{"age"}, names)
	assert.Equal(t, []interface{}{uint64(30)}, numbers)
}

func TestAdvanceMemberEmptyNameFails(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor(`"": 30`)
	err := ctx.AdvanceMember(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadMemberName, err.Code)
}

func TestAdvanceMemberNonStringNameFails(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor(`1: 2`)
	err := ctx.AdvanceMember(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadMemberName, err.Code)
}

func TestAdvanceObjectNonStringMemberNameFails(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor(`{1: 2}`)
	err := ctx.AdvanceObject(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadMemberName, err.Code)
}

func TestAdvanceMemberMissingSeparatorFails(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor(`"age" 30`)
	err := ctx.AdvanceMember(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadMemberName, err.Code)
}

func TestAdvanceObjectMembers(t *testing.T) {
	ctx := newTestContext()
	var names []string
	ctx.cb.OnMemberName = func(n string) { names = append(names, n) }

	c := NewCursor(`{"a": 1, "b": 2}`)
	err := ctx.AdvanceObject(c)
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.True(t, c.AtEnd())
}

func TestAdvanceObjectEmpty(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor("{}")
	err := ctx.AdvanceObject(c)
	require.Nil(t, err)
	assert.True(t, c.AtEnd())
}

func TestAdvanceObjectUnclosedFails(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor(`{"a": 1`)
	err := ctx.AdvanceObject(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrUnbalancedObjectBracket, err.Code)
}
