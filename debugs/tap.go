package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/monkey/logs"
	"github.com/reusee/monkey/parser"
	"github.com/reusee/monkey/scanner"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark shell on stdin with globals converted to starlark values.
// The builtin parse(src) returns a (program, errors) tuple.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := starlark.StringDict{
			"parse": starlark.NewBuiltin("parse", parseBuiltin),
		}
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap: " + what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

func parseBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var src string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &src); err != nil {
		return nil, err
	}
	p := parser.New(scanner.New("<tap>", src))
	program := p.ParseProgram()
	var errs []starlark.Value
	for _, msg := range p.Errors() {
		errs = append(errs, starlark.String(msg))
	}
	return starlark.Tuple{
		toStarlarkValue(program),
		starlark.NewList(errs),
	}, nil
}
