// Package rewrite builds a new text from an original text and edits to it
package rewrite

import (
	"bytes"
	"sort"
)

// Edit replaces the range [Start, End) with Text
type Edit struct {
	Start int
	End   int
	Text  []byte
}

// Apply returns a new copy of s with edits performed. Edits are applied in
// start order, an edit overlapping an already applied one is skipped.
func Apply(s []byte, edits []Edit) []byte {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	n := &bytes.Buffer{}
	n.Grow(len(s))
	lastIndex := 0
	for _, e := range sorted {
		if e.Start < lastIndex {
			continue
		}
		n.Write(s[lastIndex:e.Start])
		n.Write(e.Text)
		lastIndex = e.End
	}
	n.Write(s[lastIndex:])

	return n.Bytes()
}
