package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/monkey/diag"
	"github.com/reusee/monkey/logs"
	"github.com/reusee/monkey/modes"
	"github.com/reusee/monkey/monkeyconfigs"
	"github.com/reusee/monkey/parser"
	"github.com/reusee/monkey/repl"
	"github.com/reusee/monkey/syncs"
)

type parseResult struct {
	path   string
	src    string
	output string
	err    error
}

func parseFiles(ctx context.Context, scope dscope.Scope, paths []string) (err error) {
	scope.Call(func(
		workers monkeyconfigs.ParseWorkers,
		newSpan logs.NewSpan,
		logger logs.Logger,
		mode modes.Mode,
	) {
		results := parseConcurrently(ctx, paths, int(workers), newSpan, logger)
		err = writeResults(os.Stdout, repl.NewPrinter(monkeyconfigs.ReplAST, mode, os.Stdout), results)
	})
	return
}

// parseConcurrently parses each file in its own goroutine, at most workers at a time.
// Results are in the order of paths.
func parseConcurrently(
	ctx context.Context,
	paths []string,
	workers int,
	newSpan logs.NewSpan,
	logger logs.Logger,
) []parseResult {
	results := make([]parseResult, len(paths))
	sem := syncs.NewSemaphore(workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		results[i].path = path
		if err := sem.Acquire(ctx); err != nil {
			results[i].err = err
			continue
		}
		wg.Go(func() {
			defer sem.Release()
			ctx, _ := newSpan(ctx, "", "parse "+path)
			results[i] = parseFile(ctx, path)
			if results[i].err != nil {
				logger.WarnContext(ctx, "parse failed",
					"path", path,
				)
			}
		})
	}
	wg.Wait()
	return results
}

func parseFile(ctx context.Context, path string) parseResult {
	result := parseResult{
		path: path,
	}
	content, err := os.ReadFile(path)
	if err != nil {
		result.err = logs.WrapSpan(ctx, fmt.Errorf("read %s: %w", path, err))
		return result
	}
	result.src = string(content)
	program, err := parser.Parse(path, result.src)
	if err != nil {
		result.err = err
		return result
	}
	result.output = program.String()
	return result
}

// writeResults prints each program or its diagnostics, headed by the path when there are several files.
func writeResults(w io.Writer, printer repl.Printer, results []parseResult) error {
	failed := false
	for i, result := range results {
		if len(results) > 1 {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", result.path); err != nil {
				return err
			}
		}

		if result.err != nil {
			failed = true
			var list parser.ErrorList
			if errors.As(result.err, &list) {
				if err := printer.PrintErrors(w, list.Located(diag.NewSource(result.path, result.src))); err != nil {
					return err
				}
			} else if err := printer.PrintErrors(w, []error{result.err}); err != nil {
				return err
			}
			continue
		}

		if result.output == "" {
			continue
		}
		if _, err := io.WriteString(w, strings.TrimSuffix(result.output, "\n")+"\n"); err != nil {
			return err
		}
	}
	if failed {
		return errHasDiagnostics
	}
	return nil
}

func printDiagnostics(mode modes.Mode, path string, src string, err error) error {
	printer := repl.NewPrinter(monkeyconfigs.ReplAST, mode, os.Stderr)
	var list parser.ErrorList
	if !errors.As(err, &list) {
		return err
	}
	if err := printer.PrintErrors(os.Stderr, list.Located(diag.NewSource(path, src))); err != nil {
		return err
	}
	return errHasDiagnostics
}
