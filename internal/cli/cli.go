package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cppbook/texcode/internal/locline"
	"github.com/cppbook/texcode/internal/tool"
)

// ErrUsage wrong number of arguments, the error text is the usage line
var ErrUsage = errors.New("Usage")

// ErrNotUTF8 input file is not UTF-8 text
var ErrNotUTF8 = errors.New("not valid UTF-8")

// Command runs a tool on an input file and writes the result to an output file
type Command struct {
	Version string
	OS      OS
	Tool    tool.Tool
}

func (c Command) help() string {
	text := `
Usage: {{ARGV0}} <input_file> <output_file>
{{DESCRIPTION}}

Version: {{VERSION}}

EXIT CODE:
  0: All went fine
  1: Something went wrong
`[1:]

	return strings.NewReplacer(
		"{{ARGV0}}", c.OS.Args()[0],
		"{{DESCRIPTION}}", c.Tool.Description,
		"{{VERSION}}", c.Version,
	).Replace(text)
}

// Run command
func (c Command) Run() ([]error, int) {
	errs, ec := c.run()
	for _, err := range errs {
		fmt.Fprintln(c.OS.Stderr(), err)
	}
	return errs, ec
}

func (c Command) run() ([]error, int) {
	argv0 := c.OS.Args()[0]

	flags := flag.NewFlagSet(argv0, flag.ContinueOnError)
	flags.SetOutput(c.OS.Stderr())
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), c.help())
	}
	// flag has already printed the error and usage
	if err := flags.Parse(c.OS.Args()[1:]); errors.Is(err, flag.ErrHelp) {
		return nil, 0
	} else if err != nil {
		return nil, 1
	}

	if flags.NArg() != 2 {
		return []error{fmt.Errorf("%w: %s <input_file> <output_file>", ErrUsage, argv0)}, 1
	}
	inputFile, outputFile := flags.Arg(0), flags.Arg(1)

	text, err := c.OS.ReadFile(inputFile)
	if err != nil {
		return []error{err}, 1
	}
	if !utf8.Valid(text) {
		return []error{fmt.Errorf("%s: %w", inputFile, ErrNotUTF8)}, 1
	}

	if c.Tool.Strays != nil {
		locLine := locline.New(text)
		for _, offset := range c.Tool.Strays(text) {
			fmt.Fprintf(c.OS.Stderr(), "warning: %s:%d: unterminated %s left as text\n",
				inputFile, locLine.Line(offset), c.Tool.Marker)
		}
	}

	if err := c.OS.WriteFile(outputFile, c.Tool.Transform(text)); err != nil {
		return []error{err}, 1
	}
	if c.Tool.Confirm {
		fmt.Fprintf(c.OS.Stdout(), "Processing complete, result saved to %s\n", outputFile)
	}

	return nil, 0
}
