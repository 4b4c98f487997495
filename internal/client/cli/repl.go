package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: help, write, list, delete <n|id>, yes, no, status, reconnect, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Write(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context, ref string) error
	Confirm(ctx context.Context) error
	Abort(ctx context.Context) error
	ShowStatus(ctx context.Context) error
	Reconnect(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit". Handler errors are ignored here; handlers report their own
// failures through the view-model.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("fl (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "w", "write":
			_ = a.Write(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "d", "delete", "cancel":
			if len(args) == 0 {
				printlnFn("Usage: delete <n|id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "y", "yes":
			_ = a.Confirm(ctx)

		case "n", "no":
			_ = a.Abort(ctx)

		case "status":
			_ = a.ShowStatus(ctx)

		case "reconnect":
			_ = a.Reconnect(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
