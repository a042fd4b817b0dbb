package jeyson

import (
	"fmt"

	"cosmossdk.io/log"
)

// parseContext threads the policy, callback sink, and logger through one
// top-level parse so the advance_* methods don't each need three parameters.
type parseContext struct {
	policy Policy
	cb     Callbacks
	logger log.Logger
}

func (ctx *parseContext) trace(format string, args ...interface{}) {
	ctx.logger.Debug(fmt.Sprintf(format, args...))
}

// AdvanceValue recognizes one JSON value at the cursor (spec.md §4.6): it
// skips leading whitespace, tries '['-prefixed array then '{'-prefixed
// object (a cheap one-character lookahead), then null/true/false/number/
// string in that order, emitting the matching callback on success. Trailing
// whitespace is also consumed. matched is false only when no alternative
// matched at all (a recoverable outcome at the value level itself isn't
// otherwise possible: once whitespace is skipped, every JSON value either
// matches grammatically or the cursor isn't at valid JSON).
func (ctx *parseContext) AdvanceValue(c *Cursor) (matched bool, err *Error) {
	skipWhitespace(c)
	startPos := c.Pos

	if r, ok := c.Peek(); ok && r == '[' {
		if aerr := ctx.AdvanceArray(c); aerr != nil {
			return true, aerr
		}
		skipWhitespace(c)
		return true, nil
	}

	if r, ok := c.Peek(); ok && r == '{' {
		if oerr := ctx.AdvanceObject(c); oerr != nil {
			return true, oerr
		}
		skipWhitespace(c)
		return true, nil
	}

	if AdvanceNull(c) {
		ctx.cb.OnNull()
		ctx.trace("null")
		skipWhitespace(c)
		return true, nil
	}

	if AdvanceTrue(c) {
		ctx.cb.OnTrue()
		ctx.trace("true")
		skipWhitespace(c)
		return true, nil
	}

	if AdvanceFalse(c) {
		ctx.cb.OnFalse()
		ctx.trace("false")
		skipWhitespace(c)
		return true, nil
	}

	if num, ok := AdvanceNumber(c, ctx.policy); ok {
		ctx.cb.OnNumber(num)
		ctx.trace("number")
		skipWhitespace(c)
		return true, nil
	}

	if s, smatched, serr := AdvanceString(c, ctx.policy); smatched {
		if serr != nil {
			return true, serr
		}
		ctx.cb.OnString(s)
		ctx.trace("string")
		skipWhitespace(c)
		return true, nil
	}

	return false, newError(ErrBadJSONSequence, c, startPos, "no value matched at offset %d", startPos)
}

// rootElementAllowed checks the first character at the cursor (after
// skipping whitespace) against the root-element policy bits, without
// consuming anything.
func rootElementAllowed(c *Cursor, policy Policy) (allowed bool, kind string) {
	mark := c.Mark()
	skipWhitespace(c)
	r, ok := c.Peek()
	c.Reset(mark)
	if !ok {
		return true, "" // empty input: let the value dispatcher report bad_json_sequence
	}

	switch {
	case r == '{':
		return policy.AllowObjectRootElement, "object"
	case r == '[':
		return policy.AllowArrayRootElement, "array"
	case r == '"' || (r == '\'' && policy.AllowSingleQuoteMark):
		return policy.AllowStringRootElement, "string"
	case r == 't' || r == 'f':
		return policy.AllowBooleanRootElement, "boolean"
	case r == 'n':
		return policy.AllowNullRootElement, "null"
	default:
		return policy.AllowNumberRootElement, "number"
	}
}

// AdvanceJSON is identical to AdvanceValue, except each top-level
// alternative is first gated on the root-element policy bits (spec.md
// §4.6). Attempting a disallowed root type raises ErrForbiddenRootElement
// and aborts without consuming input.
func (ctx *parseContext) AdvanceJSON(c *Cursor) (matched bool, err *Error) {
	startPos := c.Pos

	if allowed, kind := rootElementAllowed(c, ctx.policy); !allowed {
		return true, newError(ErrForbiddenRootElement, c, startPos, "%s is not a legal root element under this policy", kind)
	}

	return ctx.AdvanceValue(c)
}

// Parse runs the top-level dispatcher over the full text in s under policy,
// invoking cb's handlers as it recognizes grammar. On success it returns the
// position just past the last consumed character; on failure it returns the
// original start position unchanged, having already informed cb.OnError of
// the first fault (spec.md §6, §7).
func Parse(s string, policy Policy, cb Callbacks, opts ...Options) int {
	cb.fillDefaults()
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	ctx := &parseContext{policy: policy, cb: cb, logger: o.logger()}

	c := NewCursor(s)
	start := c.Pos

	matched, err := ctx.AdvanceJSON(c)
	if err != nil {
		ctx.logger.Error(err.Error())
		cb.OnError(err)
		return start
	}
	if !matched {
		e := newError(ErrBadJSONSequence, c, start, "empty input")
		ctx.logger.Error(e.Error())
		cb.OnError(e)
		return start
	}

	return c.Pos
}
