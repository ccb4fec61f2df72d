// Package fence converts ``` fenced code to \begin{cpp} ... \end{cpp} blocks
package fence

import (
	"bytes"

	"github.com/cppbook/texcode/internal/region"
	"github.com/cppbook/texcode/internal/rewrite"
)

// Block returns content trimmed of surrounding white space between begin
// and end marker lines
func Block(content []byte) []byte {
	b := &bytes.Buffer{}
	b.WriteString(region.CPP.Open)
	b.WriteByte('\n')
	b.Write(bytes.TrimSpace(content))
	b.WriteByte('\n')
	b.WriteString(region.CPP.Close)
	return b.Bytes()
}

// Convert replaces each fenced block in text with a cpp block, other text
// is left as is.
// An info string after the opening fence is not special and ends up as
// the first line of the block.
func Convert(text []byte) []byte {
	var edits []rewrite.Edit

	for _, s := range region.Backticks.Blocks(text) {
		edits = append(edits, rewrite.Edit{
			Start: s.Start,
			End:   s.End,
			Text:  Block(s.Content(text)),
		})
	}

	return rewrite.Apply(text, edits)
}

// Strays returns offsets of fences that has no closing fence
func Strays(text []byte) []int {
	return region.Backticks.Strays(text)
}
