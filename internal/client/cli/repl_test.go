package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := printfFn
	var buf bytes.Buffer
	printfFn = func(format string, args ...any) {
		fmt.Fprintf(&buf, format, args...)
	}
	t.Cleanup(func() { printfFn = old })
	return &buf
}

// replStub records which commands the REPL dispatched.
type replStub struct {
	calls []string
}

func (s *replStub) Prompt() string { return "" }
func (s *replStub) List(context.Context) {
	s.calls = append(s.calls, "list")
}
func (s *replStub) Add(_ context.Context, args []string) {
	s.calls = append(s.calls, "add:"+strings.Join(args, " "))
}
func (s *replStub) Toggle(_ context.Context, args []string) {
	s.calls = append(s.calls, "toggle:"+strings.Join(args, " "))
}
func (s *replStub) Edit(_ context.Context, args []string) {
	s.calls = append(s.calls, "edit:"+strings.Join(args, " "))
}
func (s *replStub) Delete(_ context.Context, args []string) {
	s.calls = append(s.calls, "delete:"+strings.Join(args, " "))
}
func (s *replStub) ClearCompleted(context.Context) {
	s.calls = append(s.calls, "clear")
}
func (s *replStub) SetFilter(_ context.Context, args []string) {
	s.calls = append(s.calls, "filter:"+strings.Join(args, " "))
}
func (s *replStub) Refresh(context.Context) {
	s.calls = append(s.calls, "refresh")
}

func runScript(t *testing.T, script string) (*replStub, string) {
	t.Helper()
	buf := captureOutput(t)
	stub := &replStub{}
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, scanner)
	return stub, buf.String()
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub, _ := runScript(t, strings.Join([]string{
		"list",
		"l",
		"add Buy milk",
		"toggle 1",
		"edit 2",
		"delete 3",
		"clear",
		"filter active",
		"refresh",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"list",
		"list",
		"add:Buy milk",
		"toggle:1",
		"edit:2",
		"delete:3",
		"clear",
		"filter:active",
		"refresh",
	}, stub.calls)
}

func TestREPL_ExitPrintsBye(t *testing.T) {
	_, out := runScript(t, "quit\n")
	assert.Contains(t, out, "Bye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub, out := runScript(t, "frobnicate\nexit\n")
	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_SkipsBlankLinesAndStopsOnEOF(t *testing.T) {
	stub, _ := runScript(t, "\n\nlist\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestREPL_Help(t *testing.T) {
	_, out := runScript(t, "help\nexit\n")
	assert.Contains(t, out, "Available commands")
}
