package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/monkey/debugs"
	"github.com/reusee/monkey/repl"
)

type Module struct {
	dscope.Module
	Repl   repl.Module
	Debugs debugs.Module
}
