package logs

import (
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/reusee/monkey/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	// diagnostics go to the user directly, logs are for tracing the tool itself
	level.Set(slog.LevelWarn)

	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+strings.ToLower(l.String())))
	}
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
) Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		}),
	}

	if runningAsService() {
		journal, err := newJournalHandler()
		if err != nil {
			slog.New(handlers[0]).Warn("new systemd journal handler", "error", err)
		} else {
			handlers = append(handlers, journal)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps a slog key to the journal field charset, like logs.span to LOGS_SPAN.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func runningAsService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	line, _, _ := strings.Cut(string(content), "\n")
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return false
	}
	cgroup := parts[2]
	return strings.HasSuffix(cgroup, ".service") ||
		strings.HasSuffix(path.Dir(cgroup), ".service")
}
