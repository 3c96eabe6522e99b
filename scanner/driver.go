package scanner

// Scan walks buf from its last byte to its first, emitting comment,
// URI, tag and EXTINF events to sink in *reverse document order* (the
// last line of buf is reported first). A caller that wants document
// order must reverse the sequence itself — see playlist.Builder.
//
// Scan invokes exactly one of sink.OnParseComplete or
// sink.OnParseError before returning, unless sink.OnURI requested an
// early stop, in which case neither is called. buf is only borrowed
// for the duration of this call: Scan never retains or mutates it.
func Scan(buf []byte, sink Sink) {
	length := int64(len(buf))

	state := Scanning
	var ls lineState
	ls.reset(length - 1)

	index := length
	for index > 0 && int(state) < numScanningStates {
		index--
		b := buf[index]
		state = dispatchTable[state][b](sink, b, index, state, &ls)
	}

	if index == 0 && int(state) < numScanningStates {
		// The lowest line in the buffer has no preceding newline.
		// Synthesize one at the virtual offset -1 so the final line
		// still gets flushed; lineState.start resolves to -1+1 == 0,
		// correctly marking the first byte of the buffer.
		state = dispatchTable[state]['\n'](sink, '\n', -1, state, &ls)
	}

	if int(state) < numScanningStates {
		sink.OnParseComplete()
	}
	// Otherwise state is EarlyExit (sink-requested stop, no further
	// signal) or ErrorEarlyExit (OnParseError already delivered).
}
