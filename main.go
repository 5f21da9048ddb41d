package main

import (
	"fmt"
	"os"

	"github.com/hnnsb/kilo-editor/editor"
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: kilo-editor [file]")
		os.Exit(1)
	}

	var filename string
	if len(args) == 1 {
		filename = args[0]
	}

	e := editor.NewEditor()
	if err := e.Run(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
