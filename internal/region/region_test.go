package region_test

import (
	"testing"

	"github.com/cppbook/texcode/internal/deepequal"
	"github.com/cppbook/texcode/internal/region"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		desc     string
		d        region.Delimiter
		text     string
		expected []region.Span
	}{
		{
			desc:     "empty",
			d:        region.CPP,
			text:     ``,
			expected: nil,
		},
		{
			desc: "no blocks",
			d:    region.CPP,
			text: `abc`,
			expected: []region.Span{
				{Kind: region.Text, Start: 0, End: 3},
			},
		},
		{
			desc: "text around block",
			d:    region.CPP,
			text: `a\begin{cpp}x\end{cpp}b`,
			expected: []region.Span{
				{Kind: region.Text, Start: 0, End: 1},
				{Kind: region.Block, Start: 1, End: 22, Inner: [2]int{12, 13}},
				{Kind: region.Text, Start: 22, End: 23},
			},
		},
		{
			desc: "adjacent blocks are not merged",
			d:    region.CPP,
			text: `\begin{cpp}1\end{cpp}\begin{cpp}2\end{cpp}`,
			expected: []region.Span{
				{Kind: region.Block, Start: 0, End: 21, Inner: [2]int{11, 12}},
				{Kind: region.Block, Start: 21, End: 42, Inner: [2]int{32, 33}},
			},
		},
		{
			desc: "unterminated",
			d:    region.CPP,
			text: `a\begin{cpp}b`,
			expected: []region.Span{
				{Kind: region.Text, Start: 0, End: 13},
			},
		},
		{
			desc: "nested closes at first end",
			d:    region.CPP,
			text: `\begin{cpp}a\begin{cpp}b\end{cpp}c\end{cpp}`,
			expected: []region.Span{
				{Kind: region.Block, Start: 0, End: 33, Inner: [2]int{11, 24}},
				{Kind: region.Text, Start: 33, End: 43},
			},
		},
		{
			desc: "fence over newlines",
			d:    region.Backticks,
			text: "```\nx\n```",
			expected: []region.Span{
				{Kind: region.Block, Start: 0, End: 9, Inner: [2]int{3, 6}},
			},
		},
		{
			desc: "odd number of fences",
			d:    region.Backticks,
			text: "```a``` b ```c",
			expected: []region.Span{
				{Kind: region.Block, Start: 0, End: 7, Inner: [2]int{3, 4}},
				{Kind: region.Text, Start: 7, End: 14},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			actual := tC.d.Split([]byte(tC.text))
			deepequal.Error(t, "spans", tC.expected, actual)
		})
	}
}

func TestSplitCoversText(t *testing.T) {
	text := []byte("a ```b``` c ```d```e ``` f")
	end := 0
	for _, s := range region.Backticks.Split(text) {
		if s.Start != end {
			t.Fatalf("expected span to start at %d, got %d", end, s.Start)
		}
		end = s.End
	}
	if end != len(text) {
		t.Errorf("expected spans to end at %d, got %d", len(text), end)
	}
}

func TestContent(t *testing.T) {
	text := []byte("x```\n  y  \n```z")
	spans := region.Backticks.Split(text)
	var actual []string
	for _, s := range spans {
		actual = append(actual, s.Kind.String()+":"+string(s.Content(text)))
	}
	deepequal.Error(t, "content", []string{"text:x", "block:\n  y  \n", "text:z"}, actual)
}

func TestBlocks(t *testing.T) {
	text := []byte(`a\begin{cpp}1\end{cpp}b\begin{cpp}2\end{cpp}c\begin{cpp}3`)
	blocks := region.CPP.Blocks(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	for _, b := range blocks {
		if b.Kind != region.Block {
			t.Errorf("expected block, got %s", b.Kind)
		}
	}
}

func TestStrays(t *testing.T) {
	testCases := []struct {
		desc     string
		d        region.Delimiter
		text     string
		expected []int
	}{
		{desc: "none", d: region.CPP, text: `\begin{cpp}a\end{cpp}`, expected: nil},
		{desc: "unterminated cpp", d: region.CPP, text: "x\n\\begin{cpp}\ny", expected: []int{2}},
		{desc: "single fence", d: region.Backticks, text: "a\n```b", expected: []int{2}},
		{desc: "trailing fence", d: region.Backticks, text: "```a``` ```b", expected: []int{8}},
		{desc: "close marker only", d: region.CPP, text: `a\end{cpp}`, expected: nil},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			actual := tC.d.Strays([]byte(tC.text))
			deepequal.Error(t, "strays", tC.expected, actual)
		})
	}
}
