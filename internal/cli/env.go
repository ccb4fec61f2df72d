package cli

import (
	"io"
)

// OS is what a command needs from the operating system
type OS interface {
	Args() []string
	Stdout() io.Writer
	Stderr() io.Writer
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte) error
}
