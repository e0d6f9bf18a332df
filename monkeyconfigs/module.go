package monkeyconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/monkey/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
