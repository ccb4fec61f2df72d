package main

import (
	"os"

	"github.com/cppbook/texcode/internal/cli"
	"github.com/cppbook/texcode/internal/tool"
)

var version = "dev"

func main() {
	_, ec := cli.Command{
		Version: version,
		OS:      cli.OSEnv{},
		Tool:    tool.FenceToCPP,
	}.Run()
	os.Exit(ec)
}
