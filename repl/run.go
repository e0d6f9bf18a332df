package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/monkey/logs"
	"github.com/reusee/monkey/modes"
	"github.com/reusee/monkey/monkeyconfigs"
)

type Run func(ctx context.Context) error

func (Module) Run(
	prompt monkeyconfigs.Prompt,
	historyFile monkeyconfigs.HistoryFile,
	replMode monkeyconfigs.ReplMode,
	mode modes.Mode,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context) error {
		if err := replMode.Validate(); err != nil {
			return err
		}
		ctx, _ = newSpan(ctx, "", "repl")

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}
		defer rl.Close()

		logger.InfoContext(ctx, "repl",
			"mode", replMode,
			"history", historyFile,
		)

		printer := NewPrinter(replMode, mode, os.Stdout)
		return serve(ctx, printer, logger, rl.Readline, rl.Stdout())
	}
}

// serve prints each line from readLine until it reports EOF or an interrupt.
func serve(
	ctx context.Context,
	printer Printer,
	logger logs.Logger,
	readLine func() (string, error),
	out io.Writer,
) error {
	for n := 1; ; n++ {
		line, err := readLine()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) { // Ctrl-D or Ctrl-C
			return nil
		}
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		name := fmt.Sprintf("<repl:%d>", n)
		logger.DebugContext(ctx, "line", "name", name)
		if err := printer.Print(out, name, line); err != nil {
			return logs.WrapSpan(ctx, err)
		}
	}
}
