package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestVariadicArguments(t *testing.T) {
	executor := NewExecutor()
	var files []string
	var workers int
	executor.Define("parse", Func(func(n int, paths ...string) {
		workers = n
		files = paths
	}))
	if err := executor.Execute([]string{"parse", "4", "a.mk", "b.mk", "c.mk"}); err != nil {
		t.Fatal(err)
	}
	if workers != 4 {
		t.Fatalf("got %d", workers)
	}
	if str := strings.Join(files, ","); str != "a.mk,b.mk,c.mk" {
		t.Fatalf("got %s", str)
	}

	if err := executor.Execute([]string{"parse", "1"}); err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Fatalf("got %v", files)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errors.New("boom")
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"fail"})
	if err == nil || err.Error() != "fail: boom" {
		t.Fatalf("got %v", err)
	}
}

func TestBoolArgument(t *testing.T) {
	executor := NewExecutor()
	var v bool
	executor.Define("color", Func(func(b bool) {
		v = b
	}))
	if err := executor.Execute([]string{"color", "yes"}); err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Fatal()
	}
	if err := executor.Execute([]string{"color", "off"}); err != nil {
		t.Fatal(err)
	}
	if v {
		t.Fatal()
	}
	if err := executor.Execute([]string{"color", "maybe"}); err == nil {
		t.Fatal("should error")
	}
}
