package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the function parameters for usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

// Params renders the parameters like "<file> [n] <path>...".
// Unnamed parameters are shown by type.
func (c *Command) Params() string {
	if !c.Func.IsValid() {
		return ""
	}
	fnType := c.Func.Type()
	var parts []string
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		variadic := fnType.IsVariadic() && i == fnType.NumIn()-1
		optional := t.Kind() == reflect.Pointer
		switch {
		case variadic:
			t = t.Elem()
		case optional:
			t = t.Elem()
		}
		name := t.String()
		if t.Name() != "" {
			name = t.Name()
		}
		if i < len(c.ArgNames) {
			name = c.ArgNames[i]
		}
		switch {
		case variadic:
			parts = append(parts, "<"+name+">...")
		case optional:
			parts = append(parts, "["+name+"]")
		default:
			parts = append(parts, "<"+name+">")
		}
	}
	return strings.Join(parts, " ")
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	command := &Command{
		Func: fnValue,
	}

	return command
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
