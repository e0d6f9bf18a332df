package repl

import (
	"github.com/reusee/dscope"
	"github.com/reusee/monkey/logs"
	"github.com/reusee/monkey/monkeyconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs monkeyconfigs.Module
}
