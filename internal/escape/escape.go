// Package escape escapes underscores outside \begin{cpp} ... \end{cpp} code blocks
package escape

import (
	"bytes"

	"github.com/cppbook/texcode/internal/region"
	"github.com/cppbook/texcode/internal/rewrite"
)

var (
	underscore        = []byte(`_`)
	escapedUnderscore = []byte(`\_`)
)

// Underscores returns a copy of text where each _ outside code blocks is
// replaced by \_. Code blocks are copied as is. Applying it twice escapes
// twice.
func Underscores(text []byte) []byte {
	var edits []rewrite.Edit

	for _, s := range region.CPP.Split(text) {
		if s.Kind != region.Text {
			continue
		}
		content := s.Content(text)
		if !bytes.Contains(content, underscore) {
			continue
		}
		edits = append(edits, rewrite.Edit{
			Start: s.Start,
			End:   s.End,
			Text:  bytes.ReplaceAll(content, underscore, escapedUnderscore),
		})
	}

	return rewrite.Apply(text, edits)
}

// Strays returns offsets of \begin{cpp} markers that has no \end{cpp}
func Strays(text []byte) []int {
	return region.CPP.Strays(text)
}
