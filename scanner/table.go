package scanner

// dispatchTable is the 13×256 lookup that drives the state machine:
// dispatchTable[state][byteValue] yields the handler to run next. It
// is built once, at package init, and is read-only afterward, which
// is what makes concurrent parses over distinct buffers and sinks safe.
var dispatchTable = buildDispatchTable()

// advance returns a handler that ignores the byte and line state
// entirely and transitions unconditionally to next. It is used for
// the single-byte forward-progress cell in each "LookingFor*" row —
// the byte that continues a partial "#EXT" or "#EXTINF" match one
// character further left — and, with next == Scanning, for the
// default cells of those rows.
func advance(next State) handler {
	return func(sink Sink, b byte, index int64, current State, ls *lineState) State {
		return next
	}
}

// buildDispatchTable constructs the table following these rules:
//
//  1. Every cell defaults to what Scanning does with an ordinary byte:
//     noOp in the Scanning row, and a return to Scanning in every
//     "LookingFor*" row, since that byte breaks the match in progress.
//  2. ':' and ',' always record position and echo the current state,
//     in every row, including Scanning.
//  3. 'F', 'T' and '#' are "restart detection" bytes: in every row
//     where they are not themselves the row's forward-progress byte,
//     they behave exactly as they do from Scanning (fall back to
//     re-interpreting this byte as if the match in progress had never
//     started).
//  4. '\n' behaves as completeURLLine in every row except the three
//     "LookingForNewLine*" rows, where it is the forward-progress byte
//     that confirms and emits the matched shape.
//  5. Each row's own single forward-progress byte (if narrower than
//     the universal set above) is set last, so it always wins over the
//     generic fallback for the same byte value.
func buildDispatchTable() [numScanningStates][256]handler {
	var t [numScanningStates][256]handler

	for state := 0; state < numScanningStates; state++ {
		var fallback handler = noOp
		if State(state) != Scanning {
			fallback = advance(Scanning)
		}
		for b := 0; b < 256; b++ {
			t[state][b] = fallback
		}
		t[state][':'] = addColon
		t[state][','] = addComma
		t[state]['F'] = foundF
		t[state]['T'] = foundTForEXT
		t[state]['#'] = foundHashStartsComment
		t[state]['\n'] = completeURLLine
	}

	// "#EXT" detection chain (reversed: T, X, E, #, then newline).
	t[LookingForXForEXT]['X'] = advance(LookingForEForEXT)
	t[LookingForEForEXT]['E'] = advance(LookingForHashForEXT)
	t[LookingForHashForEXT]['#'] = advance(LookingForNewLineForEXT)
	t[LookingForNewLineForEXT]['\n'] = completeEXTTag

	// Bare '#' (comment) detection.
	t[LookingForNewLineForComment]['\n'] = completeComment

	// "#EXTINF" detection chain (reversed: F, N, I, T, X, E, #, then newline).
	t[LookingForNForEXTINF]['N'] = advance(LookingForIForEXTINF)
	t[LookingForIForEXTINF]['I'] = advance(LookingForTForEXTINF)
	t[LookingForTForEXTINF]['T'] = advance(LookingForXForEXTINF) // overrides foundTForEXT
	t[LookingForXForEXTINF]['X'] = advance(LookingForEForEXTINF)
	t[LookingForEForEXTINF]['E'] = advance(LookingForHashForEXTINF)
	t[LookingForHashForEXTINF]['#'] = advance(LookingForNewlineForEXTINF) // overrides foundHashStartsComment
	t[LookingForNewlineForEXTINF]['\n'] = completeEXTINFTag

	return t
}
