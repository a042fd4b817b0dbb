package jeyson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueScalar(t *testing.T) {
	v, err := ParseValue("42", Strict())
	require.Nil(t, err)
	n, _ := v.GetInt64()
	assert.Equal(t, int64(42), n)
}

func TestParseValueArray(t *testing.T) {
	v, err := ParseValue("[1, 2, 3]", Strict())
	require.Nil(t, err)
	require.True(t, v.IsArray())
	assert.Equal(t, 3, v.Size())

	elem, _ := v.At(1)
	n, _ := elem.GetInt64()
	assert.Equal(t, int64(2), n)
}

func TestParseValueNestedObject(t *testing.T) {
	v, err := ParseValue(`{"name": "ada", "scores": [1, 2, 3], "meta": {"active": true}}`, Strict())
	require.Nil(t, err)
	require.True(t, v.IsObject())

	name, _ := v.Field("name")
	s, _ := name.GetString()
	assert.Equal(t, "ada", s)

	scores, _ := v.Field("scores")
	assert.Equal(t, 3, scores.Size())

	meta, _ := v.Field("meta")
	active, _ := meta.Field("active")
	b, _ := active.GetBool()
	assert.True(t, b)
}

func TestParseValueReportsError(t *testing.T) {
	_, err := ParseValue("[1, 2", Strict())
	require.NotNil(t, err)
	assert.Equal(t, ErrUnbalancedArrayBracket, err.Code)
}

func TestParseBytesValue(t *testing.T) {
	v, err := ParseBytesValue([]byte("true"), Strict())
	require.Nil(t, err)
	b, _ := v.GetBool()
	assert.True(t, b)
}

func TestParseReaderValue(t *testing.T) {
	v, err := ParseReaderValue(strings.NewReader(`"hi"`), Strict())
	require.Nil(t, err)
	s, _ := v.GetString()
	assert.Equal(t, "hi", s)
}

func TestParseValueEmptyArray(t *testing.T) {
	v, err := ParseValue("[]", Strict())
	require.Nil(t, err)
	assert.True(t, v.IsArray())
	assert.Equal(t, 0, v.Size())
}

func TestParseValueDuplicateMemberNameLastWins(t *testing.T) {
	v, err := ParseValue(`{"a": 1, "a": 2}`, Strict())
	require.Nil(t, err)
	assert.Equal(t, 1, v.Size())

	field, _ := v.Field("a")
	n, _ := field.GetInt64()
	assert.Equal(t, int64(2), n)
}

func TestParseValueEmptyObject(t *testing.T) {
	v, err := ParseValue("{}", Strict())
	require.Nil(t, err)
	assert.True(t, v.IsObject())
	assert.Equal(t, 0, v.Size())
}
