package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/monkey/cmds"
	"github.com/reusee/monkey/modes"
)

// action is set by the command given on the command line.
var action func(ctx context.Context, scope dscope.Scope) error

var errHasDiagnostics = errors.New("source has errors")

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		action = runREPL
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if err := action(context.Background(), scope); err != nil {
		if !errors.Is(err, errHasDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
