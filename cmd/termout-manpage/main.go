package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/termout/cmd/termout"
	"github.com/arthur-debert/termout/internal/version"
)

func main() {
	rootCmd := termout.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TERMOUT",
		Section: "1",
		Source:  "termout " + version.Version,
		Manual:  "termout manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
