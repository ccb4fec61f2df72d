// Package tool has the document transforms that are run as commands
package tool

import (
	"github.com/cppbook/texcode/internal/escape"
	"github.com/cppbook/texcode/internal/fence"
	"github.com/cppbook/texcode/internal/region"
)

// Tool is a named whole document transform
type Tool struct {
	Name        string
	Description string
	// Marker is the opening marker named in stray warnings
	Marker string
	// Confirm prints a message naming the output file when done
	Confirm   bool
	Transform func(text []byte) []byte
	Strays    func(text []byte) []int
}

var (
	// EscapeUnderscore escapes _ outside \begin{cpp} ... \end{cpp}
	EscapeUnderscore = Tool{
		Name:        "escapeunderscore",
		Description: `Replace _ with \_ outside of \begin{cpp}...\end{cpp}`,
		Marker:      region.CPP.Open,
		Confirm:     true,
		Transform:   escape.Underscores,
		Strays:      escape.Strays,
	}
	// FenceToCPP converts ``` fences to \begin{cpp} ... \end{cpp}
	FenceToCPP = Tool{
		Name:        "fencetocpp",
		Description: "Convert ```...``` fenced code to \\begin{cpp}...\\end{cpp} blocks",
		Marker:      region.Backticks.Open,
		Transform:   fence.Convert,
		Strays:      fence.Strays,
	}
)

// All tools
func All() []Tool {
	return []Tool{
		EscapeUnderscore,
		FenceToCPP,
	}
}

// Find tool by name
func Find(name string) (Tool, bool) {
	for _, t := range All() {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}
