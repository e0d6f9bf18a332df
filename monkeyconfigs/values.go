package monkeyconfigs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/reusee/monkey/cmds"
	"github.com/reusee/monkey/configs"
)

type ReplMode string

const (
	ReplTokens ReplMode = "tokens"
	ReplAST    ReplMode = "ast"
	ReplDump   ReplMode = "dump"
)

var _ configs.Configurable = ReplMode("")

func (ReplMode) ConfigPath() string {
	return "repl_mode"
}

func (r ReplMode) Validate() error {
	switch r {
	case ReplTokens, ReplAST, ReplDump:
		return nil
	}
	return fmt.Errorf("unknown repl mode: %q", string(r))
}

var replModeFlag = cmds.Var[ReplMode]("-mode", "repl output: tokens, ast or dump")

func (Module) ReplMode(
	loader configs.Loader,
) ReplMode {
	mode := configs.Resolve(loader, *replModeFlag)
	if mode == "" {
		mode = ReplAST
	}
	return mode
}

type Prompt string

var _ configs.Configurable = Prompt("")

func (Prompt) ConfigPath() string {
	return "prompt"
}

var promptFlag = cmds.Var[Prompt]("-prompt", "repl prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	prompt := configs.Resolve(loader, *promptFlag)
	if prompt == "" {
		prompt = ">> "
	}
	return prompt
}

type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (HistoryFile) ConfigPath() string {
	return "history_file"
}

var historyFileFlag = cmds.Var[HistoryFile]("-history", "repl history file")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	path := configs.Resolve(loader, *historyFileFlag)
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = HistoryFile(filepath.Join(home, ".monkey_history"))
		}
	}
	return path
}

type ParseWorkers int

var _ configs.Configurable = ParseWorkers(0)

func (ParseWorkers) ConfigPath() string {
	return "parse_workers"
}

var parseWorkersFlag = cmds.Var[ParseWorkers]("-workers", "files parsed at the same time")

func (Module) ParseWorkers(
	loader configs.Loader,
) ParseWorkers {
	n := configs.Resolve(loader, *parseWorkersFlag)
	if n <= 0 {
		n = ParseWorkers(runtime.NumCPU())
	}
	return n
}
