package jeyson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceValueDispatchesEachKind(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},
		{"number", "42"},
		{"string", `"hi"`},
		{"array", "[1,2]"},
		{"object", `{"a":1}`},
	} {
		t.Run(test.name, func(t *testing.T) {
			ctx := newTestContext()
			c := NewCursor(test.input)
			matched, err := ctx.AdvanceValue(c)
			require.Nil(t, err)
			assert.True(t, matched)
			assert.True(t, c.AtEnd())
		})
	}
}

func TestAdvanceValueBadInputReportsError(t *testing.T) {
	ctx := newTestContext()
	c := NewCursor("@@@")
	matched, err := ctx.AdvanceValue(c)
	assert.False(t, matched)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadJSONSequence, err.Code)
}

func TestRootElementAllowedGatesByPolicy(t *testing.T) {
	allowed, kind := rootElementAllowed(NewCursor("42"), RFC4627())
	assert.False(t, allowed)
	assert.Equal(t, "number", kind)

	allowed, kind = rootElementAllowed(NewCursor("[1]"), RFC4627())
	assert.True(t, allowed)
	assert.Equal(t, "array", kind)
}

func TestAdvanceJSONForbidsDisallowedRoot(t *testing.T) {
	ctx := &parseContext{policy: RFC4627(), cb: NewCallbacks(), logger: DefaultOptions().logger()}
	c := NewCursor("42")
	_, err := ctx.AdvanceJSON(c)
	require.NotNil(t, err)
	assert.Equal(t, ErrForbiddenRootElement, err.Code)
	assert.Equal(t, 0, c.Pos)
}

func TestParseSuccessReturnsConsumedLength(t *testing.T) {
	var gotNumbers []interface{}
	cb := Callbacks{OnNumber: func(n interface{}) { gotNumbers = append(gotNumbers, n) }}

	n := Parse("[1, 2, 3]", Strict(), cb)
	assert.Equal(t, 9, n)
	assert.Equal(t, []interface{}{uint64(1), uint64(2), uint64(3)}, gotNumbers)
}

func TestParseFailureReportsErrorAndReturnsStart(t *testing.T) {
	var gotErr *Error
	cb := Callbacks{OnError: func(err *Error) { gotErr = err }}

	n := Parse("[1, ", Strict(), cb)
	assert.Equal(t, 0, n)
	require.NotNil(t, gotErr)
	assert.Equal(t, ErrUnbalancedArrayBracket, gotErr.Code)
}

func TestParseEmptyInputReportsBadSequence(t *testing.T) {
	var gotErr *Error
	cb := Callbacks{OnError: func(err *Error) { gotErr = err }}

	n := Parse("", Strict(), cb)
	assert.Equal(t, 0, n)
	require.NotNil(t, gotErr)
	assert.Equal(t, ErrBadJSONSequence, gotErr.Code)
}

func TestParseBareDotNumberFailsWithBadSequence(t *testing.T) {
	var gotErr *Error
	cb := Callbacks{OnError: func(err *Error) { gotErr = err }}

	n := Parse("3.", Strict(), cb)
	assert.Equal(t, 0, n)
	require.NotNil(t, gotErr)
	assert.Equal(t, ErrBadJSONSequence, gotErr.Code)
}
