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
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, name string) error
	Ingredients(ctx context.Context, args []string) error
	AddIngredient(ctx context.Context) error
	DeleteIngredient(ctx context.Context, args []string) error
	Expiring(ctx context.Context, args []string) error
	Lists(ctx context.Context) error
	NewList(ctx context.Context, args []string) error
	DeleteList(ctx context.Context, args []string) error
	AddItem(ctx context.Context, args []string) error
	MarkItem(ctx context.Context, args []string, purchased bool) error
	DeleteItem(ctx context.Context, args []string) error
	Recipes(ctx context.Context, args []string) error
	Match(ctx context.Context) error
	Seed(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PantryPal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pp> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Pages: open <dashboard|ingredients|shopping|recipes|login|register>")
				printlnFn("Inventory: ingredients [location], addingredient, delingredient <id>, expiring [days]")
				printlnFn("Shopping: lists, newlist <name>, dellist <id>, additem <list-id>, buy <item-id>, unbuy <item-id>, delitem <item-id>")
				printlnFn("Recipes: recipes [healthy], match, seed")
				printlnFn("Session: whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, open <page>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <page>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "ingredients":
			_ = a.Ingredients(ctx, args)

		case "addingredient":
			_ = a.AddIngredient(ctx)

		case "delingredient":
			_ = a.DeleteIngredient(ctx, args)

		case "expiring":
			_ = a.Expiring(ctx, args)

		case "lists":
			_ = a.Lists(ctx)

		case "newlist":
			_ = a.NewList(ctx, args)

		case "dellist":
			_ = a.DeleteList(ctx, args)

		case "additem":
			_ = a.AddItem(ctx, args)

		case "buy":
			_ = a.MarkItem(ctx, args, true)

		case "unbuy":
			_ = a.MarkItem(ctx, args, false)

		case "delitem":
			_ = a.DeleteItem(ctx, args)

		case "recipes":
			_ = a.Recipes(ctx, args)

		case "match":
			_ = a.Match(ctx)

		case "seed":
			_ = a.Seed(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
