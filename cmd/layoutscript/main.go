// Command layoutscript runs a JS file against a fresh layout.Context.
// It prints nothing itself beyond errors: scripts build the tree, call
// layout.run, and report results (for example layout.rect values)
// through console.log; see pkg/js for the bound API.
package main

import (
	"fmt"
	"os"

	"layx/pkg/js"
	"layx/pkg/layout"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: layoutscript <script.js>")
		os.Exit(2)
	}
	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := layout.NewContext()
	engine := js.New(ctx)
	if _, err := engine.Run(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
