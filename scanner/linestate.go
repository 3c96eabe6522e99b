package scanner

import "math"

// invalidOffset is the sentinel that marks an offset as not yet seen,
// per the line-state record's "invalid" convention (the largest
// representable value of the offset type).
const invalidOffset int64 = math.MaxInt64

// lineState tracks, for the line currently under reconstruction, the
// offsets of interesting punctuation plus the line's start and end.
// Because the driver scans from high offsets to low, colonPos and
// commaPos naturally converge on the earliest (leftmost) occurrence:
// each new sighting simply overwrites the previous one.
type lineState struct {
	colonPos int64
	commaPos int64
	start    int64
	end      int64
}

// reset reinitializes the record to scan the next (earlier) line,
// whose last content byte sits at newEnd (normally the offset just
// left of the newline that completed the previous line).
func (ls *lineState) reset(newEnd int64) {
	ls.colonPos = invalidOffset
	ls.commaPos = invalidOffset
	ls.start = invalidOffset
	ls.end = newEnd
}
