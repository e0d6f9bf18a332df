package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/monkey/cmds"
	"github.com/reusee/monkey/debugs"
	"github.com/reusee/monkey/dump"
	"github.com/reusee/monkey/logs"
	"github.com/reusee/monkey/modes"
	"github.com/reusee/monkey/monkeyconfigs"
	"github.com/reusee/monkey/parser"
	"github.com/reusee/monkey/repl"
	"github.com/reusee/monkey/scanner"
)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		action = runREPL
	}).Desc("start an interactive session"))

	cmds.Define("tokens", cmds.Func(func(path string) {
		action = func(ctx context.Context, scope dscope.Scope) error {
			return printTokens(scope, path)
		}
	}).Desc("print the tokens of a file").Args("file"))

	cmds.Define("parse", cmds.Func(func(paths ...string) error {
		if len(paths) == 0 {
			return fmt.Errorf("no files given")
		}
		action = func(ctx context.Context, scope dscope.Scope) error {
			return parseFiles(ctx, scope, paths)
		}
		return nil
	}).Desc("parse files and print them in canonical form").Args("file"))

	cmds.Define("dump", cmds.Func(func(path string) {
		action = func(ctx context.Context, scope dscope.Scope) error {
			return dumpFile(scope, path)
		}
	}).Desc("print the syntax tree of a file as yaml").Args("file"))

	cmds.Define("tap", cmds.Func(func(path string) {
		action = func(ctx context.Context, scope dscope.Scope) error {
			return tapFile(ctx, scope, path)
		}
	}).Desc("inspect the syntax tree of a file in a starlark shell").Args("file"))
}

func runREPL(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		run repl.Run,
	) {
		err = run(ctx)
	})
	return
}

func printTokens(scope dscope.Scope, path string) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		mode modes.Mode,
	) {
		printer := repl.NewPrinter(monkeyconfigs.ReplTokens, mode, os.Stdout)
		err = printer.Print(os.Stdout, path, string(src))
	})
	return
}

func dumpFile(scope dscope.Scope, path string) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		mode modes.Mode,
	) {
		program, parseErr := parser.Parse(path, string(src))
		if parseErr != nil {
			err = printDiagnostics(mode, path, string(src), parseErr)
			return
		}
		err = dump.Encode(os.Stdout, program)
	})
	return
}

func tapFile(ctx context.Context, scope dscope.Scope, path string) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		tap debugs.Tap,
		newSpan logs.NewSpan,
	) {
		ctx, _ = newSpan(ctx, "", "tap "+path)
		p := parser.New(scanner.New(path, string(src)))
		program := p.ParseProgram()
		var tokens []any
		for tok := range scanner.New(path, string(src)).Tokens() {
			tokens = append(tokens, tok)
		}
		var errs []any
		for _, msg := range p.Errors() {
			errs = append(errs, msg)
		}
		tap(ctx, path, map[string]any{
			"program": program,
			"errors":  errs,
			"tokens":  tokens,
		})
	})
	return
}
