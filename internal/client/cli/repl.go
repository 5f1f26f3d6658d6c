package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printfFn is a test seam for user-facing output. In tests, replace it with a
// stub that captures output.
var printfFn = func(format string, args ...any) {
	fmt.Printf(format, args...)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight
// stub.
type execIface interface {
	Prompt() string
	List(ctx context.Context)
	Add(ctx context.Context, args []string)
	Toggle(ctx context.Context, args []string)
	Edit(ctx context.Context, args []string)
	Delete(ctx context.Context, args []string)
	ClearCompleted(ctx context.Context)
	SetFilter(ctx context.Context, args []string)
	Refresh(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop for the Taskboard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help                           — show available commands
//	list | l                       — show the task list for the active filter
//	add [text]                     — create a task (prompts when text omitted)
//	toggle <id>                    — flip a task's completion
//	edit <id>                      — edit a task's text (empty input cancels)
//	delete <id>                    — delete a task (asks for confirmation)
//	clear                          — delete all completed tasks (confirmed)
//	filter all|active|completed    — switch the display filter
//	refresh                        — refetch the list from the server
//	exit | quit                    — leave the program
//
// Any errors hit by command handlers are reported by the handlers themselves;
// this keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printfFn("%s", a.Prompt())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printfFn("Available commands: (l)ist, add [text], toggle <id>, edit <id>, delete <id>, clear, filter all|active|completed, refresh, exit\n")

		case "l", "list":
			a.List(ctx)

		case "add":
			a.Add(ctx, args)

		case "toggle":
			a.Toggle(ctx, args)

		case "edit":
			a.Edit(ctx, args)

		case "delete":
			a.Delete(ctx, args)

		case "clear":
			a.ClearCompleted(ctx)

		case "filter":
			a.SetFilter(ctx, args)

		case "refresh":
			a.Refresh(ctx)

		case "exit", "quit":
			printfFn("Bye!\n")
			return

		default:
			printfFn("Unknown command: %s\n", cmd)
		}
	}
}
