package jeyson

// advanceDelimiter consumes optional whitespace, exactly one occurrence of
// delim, and optional whitespace. It succeeds iff delim is present;
// otherwise the cursor is left unchanged (a recoverable mismatch).
func advanceDelimiter(c *Cursor, delim rune) bool {
	mark := c.Mark()
	skipWhitespace(c)
	r, ok := c.Peek()
	if !ok || r != delim {
		c.Reset(mark)
		return false
	}
	c.Next()
	skipWhitespace(c)
	return true
}

// AdvanceBeginArray consumes ws '[' ws.
func AdvanceBeginArray(c *Cursor) bool { return advanceDelimiter(c, '[') }

// AdvanceEndArray consumes ws ']' ws.
func AdvanceEndArray(c *Cursor) bool { return advanceDelimiter(c, ']') }

// AdvanceBeginObject consumes ws '{' ws.
func AdvanceBeginObject(c *Cursor) bool { return advanceDelimiter(c, '{') }

// AdvanceEndObject consumes ws '}' ws.
func AdvanceEndObject(c *Cursor) bool { return advanceDelimiter(c, '}') }

// AdvanceNameSeparator consumes ws ':' ws.
func AdvanceNameSeparator(c *Cursor) bool { return advanceDelimiter(c, ':') }

// AdvanceValueSeparator consumes ws ',' ws.
func AdvanceValueSeparator(c *Cursor) bool { return advanceDelimiter(c, ',') }

// AdvanceArray consumes a JSON array starting at '[' (spec.md §4.5),
// emitting OnBeginArray/OnEndArray around whatever AdvanceValue emits for
// each element. A missing trailing ']' raises ErrUnbalancedArrayBracket,
// including when the input ends where an element was expected.
func (ctx *parseContext) AdvanceArray(c *Cursor) *Error {
	startPos := c.Pos

	if !AdvanceBeginArray(c) {
		return nil // recoverable mismatch
	}
	ctx.cb.OnBeginArray()
	ctx.trace("begin array")

	if AdvanceEndArray(c) {
		ctx.cb.OnEndArray()
		ctx.trace("end array (empty)")
		return nil
	}

	for {
		matched, err := ctx.AdvanceValue(c)
		if err != nil {
			if !matched && c.AtEnd() {
				return newError(ErrUnbalancedArrayBracket, c, c.Pos, "array starting at offset %d never closed", startPos)
			}
			return err
		}
		if !matched {
			return newError(ErrBadJSONSequence, c, c.Pos, "expected a value in array starting at offset %d", startPos)
		}

		if AdvanceValueSeparator(c) {
			continue
		}
		break
	}

	if !AdvanceEndArray(c) {
		return newError(ErrUnbalancedArrayBracket, c, c.Pos, "array starting at offset %d never closed", startPos)
	}

	ctx.cb.OnEndArray()
	ctx.trace("end array")
	return nil
}

// AdvanceMember consumes a single object member: a non-empty string name, a
// name-separator, then a value (spec.md §4.5). OnMemberName fires after the
// name and separator are accepted and before the value.
func (ctx *parseContext) AdvanceMember(c *Cursor) *Error {
	namePos := c.Pos
	name, matched, serr := AdvanceString(c, ctx.policy)
	if serr != nil {
		return serr
	}
	if !matched {
		return newError(ErrBadMemberName, c, namePos, "member name must be a string")
	}
	if name == "" {
		return newError(ErrBadMemberName, c, namePos, "empty member name")
	}

	if !AdvanceNameSeparator(c) {
		return newError(ErrBadMemberName, c, c.Pos, "member name %q not followed by ':'", name)
	}

	ctx.cb.OnMemberName(name)
	ctx.trace("member name %q", name)

	valueMatched, err := ctx.AdvanceValue(c)
	if err != nil {
		return err
	}
	if !valueMatched {
		return newError(ErrBadJSONSequence, c, c.Pos, "member %q has no value", name)
	}

	return nil
}

// AdvanceObject consumes a JSON object starting at '{' (spec.md §4.5),
// emitting OnBeginObject/OnEndObject around each AdvanceMember. A missing
// trailing '}' raises ErrUnbalancedObjectBracket.
func (ctx *parseContext) AdvanceObject(c *Cursor) *Error {
	startPos := c.Pos

	if !AdvanceBeginObject(c) {
		return nil // recoverable mismatch
	}
	ctx.cb.OnBeginObject()
	ctx.trace("begin object")

	if AdvanceEndObject(c) {
		ctx.cb.OnEndObject()
		ctx.trace("end object (empty)")
		return nil
	}

	for {
		if err := ctx.AdvanceMember(c); err != nil {
			return err
		}

		if AdvanceValueSeparator(c) {
			continue
		}
		break
	}

	if !AdvanceEndObject(c) {
		return newError(ErrUnbalancedObjectBracket, c, c.Pos, "object starting at offset %d never closed", startPos)
	}

	ctx.cb.OnEndObject()
	ctx.trace("end object")
	return nil
}
