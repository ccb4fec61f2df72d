// Package locline translates byte offsets in a text to line numbers
package locline

import (
	"sort"
)

// LocLine holds the offsets where lines start
type LocLine struct {
	starts []int
	end    int
}

// New creates a LocLine for text
func New(text []byte) LocLine {
	var starts []int
	if len(text) > 0 {
		starts = append(starts, 0)
	}
	for i, c := range text {
		if c == '\n' && i+1 < len(text) {
			starts = append(starts, i+1)
		}
	}

	return LocLine{starts: starts, end: len(text)}
}

// Line returns the 1-based line number for offset or -1 if it is outside the text
func (ll LocLine) Line(offset int) int {
	if offset < 0 || offset >= ll.end {
		return -1
	}
	// number of lines starting at or before offset
	return sort.SearchInts(ll.starts, offset+1)
}
