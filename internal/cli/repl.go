package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"farmstead/internal/routes"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state() routes.State
	Open(ctx context.Context, path string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	SetupFarm(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ListProducts(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
}

// runREPL starts the read-eval-print loop for the farm shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Which commands dispatch depends
// on the route guard state, so a command belonging to a screen the session
// cannot reach is reported as unknown. The loop exits on scanner EOF or when
// the user types "exit" or "quit".
//
// Commands per state:
//
//	Logged out:
//	  - help, register, login, open <route>, exit | quit
//
//	Awaiting farm setup:
//	  - help, setup, whoami, logout, open <route>, exit | quit
//
//	Dashboard:
//	  - help, products, add, edit <id>, delete <id>, farm,
//	    whoami, logout, open <route>, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers render
// their own failures as inline text. This keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("farm %s> ", statusFn()))
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
			printHelp(a.state())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "open":
			// Available from every state; the guard resolves the route.
			if len(args) == 0 {
				printlnFn("Usage: open <route>")
				continue
			}
			_ = a.Open(ctx, args[0])
			continue
		}

		switch a.state() {
		case routes.StateLoggedOut:
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case routes.StateAwaitingFarmSetup:
			switch cmd {
			case "setup":
				_ = a.SetupFarm(ctx)
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		default:
			switch cmd {
			case "products":
				_ = a.ListProducts(ctx)
			case "add":
				_ = a.AddProduct(ctx)
			case "edit":
				if len(args) == 0 {
					printlnFn("Usage: edit <id>")
					continue
				}
				_ = a.EditProduct(ctx, args[0])
			case "delete":
				if len(args) == 0 {
					printlnFn("Usage: delete <id>")
					continue
				}
				_ = a.DeleteProduct(ctx, args[0])
			case "farm":
				_ = a.SetupFarm(ctx)
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func printHelp(state routes.State) {
	switch state {
	case routes.StateLoggedOut:
		printlnFn("Available commands: register, login, open <route>, exit")
	case routes.StateAwaitingFarmSetup:
		printlnFn("Available commands: setup, whoami, logout, open <route>, exit")
	default:
		printlnFn("Available commands: products, add, edit <id>, delete <id>, farm, whoami, logout, open <route>, exit")
	}
}
