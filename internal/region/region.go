// Package region splits a document into plain text and delimited blocks
package region

import (
	"bytes"
	"regexp"
)

// Kind of span
type Kind int

const (
	// Text is text outside any block
	Text Kind = iota
	// Block is a delimited block including its markers
	Block
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Block:
		return "block"
	}
	return "unknown"
}

// Span is a half-open range [Start, End) of a document
type Span struct {
	Kind  Kind
	Start int
	End   int
	// Inner is the range between the markers, only set for Block
	Inner [2]int
}

// Content returns the bytes between the markers for a block and the
// whole span for text
func (s Span) Content(text []byte) []byte {
	if s.Kind == Block {
		return text[s.Inner[0]:s.Inner[1]]
	}
	return text[s.Start:s.End]
}

// Delimiter is a pair of open and close markers
type Delimiter struct {
	Open  string
	Close string
	re    *regexp.Regexp
}

// NewDelimiter creates a delimiter. A block is the shortest text, newlines
// included, from an open marker to the next close marker.
func NewDelimiter(open, close string) Delimiter {
	return Delimiter{
		Open:  open,
		Close: close,
		re:    regexp.MustCompile(`(?s)` + regexp.QuoteMeta(open) + `(.*?)` + regexp.QuoteMeta(close)),
	}
}

var (
	// CPP is \begin{cpp} ... \end{cpp}
	CPP = NewDelimiter(`\begin{cpp}`, `\end{cpp}`)
	// Backticks is a ``` ... ``` fence
	Backticks = NewDelimiter("```", "```")
)

func (d Delimiter) String() string {
	return d.Open + "..." + d.Close
}

// Split text into spans covering all of it in order. Empty text spans are
// left out so two text spans are never next to each other.
func (d Delimiter) Split(text []byte) []Span {
	var spans []Span
	lastIndex := 0

	for _, sm := range d.re.FindAllSubmatchIndex(text, -1) {
		if sm[0] > lastIndex {
			spans = append(spans, Span{Kind: Text, Start: lastIndex, End: sm[0]})
		}
		spans = append(spans, Span{
			Kind:  Block,
			Start: sm[0],
			End:   sm[1],
			Inner: [2]int{sm[2], sm[3]},
		})
		lastIndex = sm[1]
	}

	if lastIndex < len(text) {
		spans = append(spans, Span{Kind: Text, Start: lastIndex, End: len(text)})
	}

	return spans
}

// Blocks returns only the block spans of text
func (d Delimiter) Blocks(text []byte) []Span {
	var blocks []Span
	for _, s := range d.Split(text) {
		if s.Kind == Block {
			blocks = append(blocks, s)
		}
	}
	return blocks
}

// Strays returns offsets of open markers that have no close marker and so
// are treated as text
func (d Delimiter) Strays(text []byte) []int {
	open := []byte(d.Open)
	var offsets []int

	for _, s := range d.Split(text) {
		if s.Kind != Text {
			continue
		}
		for p := s.Start; p < s.End; {
			i := bytes.Index(text[p:s.End], open)
			if i == -1 {
				break
			}
			offsets = append(offsets, p+i)
			p += i + len(open)
		}
	}

	return offsets
}
