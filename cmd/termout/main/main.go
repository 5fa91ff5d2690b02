package main

import (
	"os"

	"github.com/arthur-debert/termout/cmd/termout"
)

func main() {
	os.Exit(termout.Execute())
}
