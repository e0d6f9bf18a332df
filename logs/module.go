package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives terminal logs. Diagnostics for the user are printed elsewhere.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
