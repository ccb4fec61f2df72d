package cli

import (
	"io"
	"os"
)

// OSEnv is a command OS that uses os
type OSEnv struct{}

func (OSEnv) Args() []string {
	return os.Args
}

func (OSEnv) Stdout() io.Writer {
	return os.Stdout
}

func (OSEnv) Stderr() io.Writer {
	return os.Stderr
}

// WriteFile truncates and writes in place, a failed write can leave a
// partial file
func (OSEnv) WriteFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0644)
}

func (OSEnv) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}
