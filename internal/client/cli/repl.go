package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SelectSite(ctx context.Context, siteID string) error
	Save(ctx context.Context) error
	List(ctx context.Context) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
	Discard(ctx context.Context, localID string) error
	Delete(ctx context.Context, remoteID string) error
}

const helpText = "Available commands: site <id>, save, (l)ist, sync, status, discard <localId>, delete <remoteId>, exit"

// runREPL reads commands from scanner and dispatches them to a until EOF or
// exit. Before each prompt, drainFn is called and whatever it returns (queued
// toasts) is printed first.
//
// Handler errors are printed and otherwise ignored so a failed command never
// ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, drainFn func() string, scanner *bufio.Scanner) {
	for {
		if toasts := drainFn(); toasts != "" {
			printlnFn(strings.TrimRight(toasts, "\n"))
		}
		printlnFn(fmt.Sprintf("fs %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "site":
			if len(args) != 1 {
				printlnFn("Usage: site <id>")
				continue
			}
			err = a.SelectSite(ctx, args[0])

		case "save":
			err = a.Save(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "sync":
			err = a.Sync(ctx)

		case "status":
			err = a.Status(ctx)

		case "discard":
			if len(args) != 1 {
				printlnFn("Usage: discard <localId>")
				continue
			}
			err = a.Discard(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <remoteId>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
