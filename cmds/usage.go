package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print once
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}
	var lines []string
	var subs = make(map[string]*Command)
	for command, ns := range names {
		slices.Sort(ns)
		line := strings.Repeat("  ", depth) + strings.Join(ns, ", ")
		if params := command.Params(); params != "" {
			line += " " + params
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		lines = append(lines, line)
		if len(command.Subs) > 0 {
			subs[line] = command
		}
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
		if command, ok := subs[line]; ok {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
