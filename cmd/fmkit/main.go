package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/filemanpro/fmkit/cmd/fmkit/commands"
)

const (
	cmdName = "fmkit"

	shortDesc = "The fmkit Command Line Interface (CLI)."
	longDesc  = `The fmkit (file manager toolkit) Command Line Interface (CLI).

fmkit bundles the path, filename, and filesystem utilities used by the
file manager into a standalone tool. It inspects paths, scans and
summarizes directory trees, sanitizes filenames, and opens an interactive
terminal browser.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
