package scanner

// handler is one cell of the dispatch table. Given the byte just
// visited, its offset, the state the machine was in when it was
// visited, and the in-progress line state, a handler may record
// bookkeeping, emit events on sink, and returns the next state.
//
// index is signed so the driver can pass -1 for the virtual newline
// synthesized after the buffer is exhausted (see Scan).
type handler func(sink Sink, b byte, index int64, current State, ls *lineState) State

const (
	missingTagDataMessage          = "tag had a colon but no data after it"
	missingTagDataForEXTINFMessage = "EXTINF tag had no colon"
)

// noOp leaves the line state untouched and stays in whatever state the
// machine was already in. It is the default handler of the Scanning
// row, so ordinary body bytes (e.g. the text of a comment, which the
// reverse scan visits before the line's leading '#') cost nothing.
func noOp(sink Sink, b byte, index int64, current State, ls *lineState) State {
	return current
}

// addColon records the earliest colon seen in the current line. This
// never resets an in-progress "LookingFor*" match back to Scanning —
// a colon is not a signal that a tag prefix can't still be forming —
// so it simply echoes the current state back.
func addColon(sink Sink, b byte, index int64, current State, ls *lineState) State {
	ls.colonPos = index
	return current
}

// addComma records the earliest comma seen in the current line, with
// the same current-state-preserving behavior as addColon.
func addComma(sink Sink, b byte, index int64, current State, ls *lineState) State {
	ls.commaPos = index
	return current
}

// foundF restarts EXTINF-prefix detection: whatever state the machine
// was in, an 'F' byte might be the rightmost character of "#EXTINF".
func foundF(sink Sink, b byte, index int64, current State, ls *lineState) State {
	return LookingForNForEXTINF
}

// foundTForEXT restarts EXT-prefix detection: an 'T' byte might be the
// rightmost character of "#EXT". This is the fallback behavior for
// every state except LookingForTForEXTINF, where 'T' is instead the
// row's own forward-progress byte (see the LookingForTForEXTINF row in
// buildDispatchTable).
func foundTForEXT(sink Sink, b byte, index int64, current State, ls *lineState) State {
	return LookingForXForEXT
}

// foundHashStartsComment restarts comment detection: a '#' byte might
// begin a new, unrelated line whose shape hasn't been seen yet. This
// is the fallback behavior for every row except LookingForHashForEXT
// and LookingForHashForEXTINF, where '#' is the expected forward byte.
func foundHashStartsComment(sink Sink, b byte, index int64, current State, ls *lineState) State {
	return LookingForNewLineForComment
}

// completeURLLine handles a newline encountered while the machine had
// no partial tag/comment match in progress (including as the fallback
// for a "LookingFor*" state whose match just broke). It closes out the
// line that sits between this newline and the previous one: if the
// line holds at most one byte (a blank line, or a lone '\r' left
// before a newline) the URI is suppressed, otherwise it is reported to
// the sink.
func completeURLLine(sink Sink, b byte, index int64, current State, ls *lineState) State {
	ls.start = index + 1
	if ls.end <= ls.start {
		ls.end = index - 1
		return Scanning
	}
	body := Span{Start: ls.start, End: ls.end}
	ls.reset(index - 1)
	if !sink.OnURI(body) {
		return EarlyExit
	}
	return Scanning
}

// completeEXTTag handles the newline that confirms a "#EXT..." line
// (one that is not "#EXTINF"). Absence of a colon means a bare
// no-value tag; a colon with nothing after it is a structural error.
// The line's leading '#' is never included in the reported name: it is
// the tag marker, not part of the tag.
func completeEXTTag(sink Sink, b byte, index int64, current State, ls *lineState) State {
	ls.start = index + 1
	nameStart := ls.start + 1
	if ls.colonPos == invalidOffset {
		name := Span{Start: nameStart, End: ls.end}
		ls.reset(index - 1)
		sink.OnTagNoValue(name)
		return Scanning
	}
	if ls.end-ls.colonPos == 0 {
		sink.OnParseError(MissingTagData, missingTagDataMessage)
		return ErrorEarlyExit
	}
	name := Span{Start: nameStart, End: ls.colonPos - 1}
	value := Span{Start: ls.colonPos + 1, End: ls.end}
	ls.reset(index - 1)
	sink.OnTagWithValue(name, value)
	return Scanning
}

// completeComment handles the newline that confirms a bare '#' line
// (one whose body never matched "#EXT..."). The leading '#' itself is
// excluded from the reported body.
func completeComment(sink Sink, b byte, index int64, current State, ls *lineState) State {
	ls.start = index + 1
	body := Span{Start: ls.start + 1, End: ls.end}
	ls.reset(index - 1)
	sink.OnComment(body)
	return Scanning
}

// completeEXTINFTag handles the newline that confirms a "#EXTINF..."
// line. Unlike a generic tag, the colon is mandatory: its absence is a
// structural error rather than a no-value tag. When a comma was seen,
// the duration ends just before it (the rest is the optional title);
// otherwise the duration runs to the end of the value.
func completeEXTINFTag(sink Sink, b byte, index int64, current State, ls *lineState) State {
	ls.start = index + 1
	if ls.colonPos == invalidOffset {
		sink.OnParseError(MissingTagDataForEXTINF, missingTagDataForEXTINFMessage)
		return ErrorEarlyExit
	}
	if ls.end-ls.colonPos == 0 {
		sink.OnParseError(MissingTagData, missingTagDataMessage)
		return ErrorEarlyExit
	}

	durationEnd := ls.end
	if ls.commaPos != invalidOffset {
		durationEnd = ls.commaPos - 1
	}

	name := Span{Start: ls.start + 1, End: ls.colonPos - 1}
	duration := Span{Start: ls.colonPos + 1, End: durationEnd}
	value := Span{Start: ls.colonPos + 1, End: ls.end}
	ls.reset(index - 1)
	sink.OnEXTINF(name, duration, value)
	return Scanning
}
