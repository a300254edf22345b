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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ledgers(ctx context.Context) error
	NewLedger(ctx context.Context) error
	Share(ctx context.Context, args []string) error
	Members(ctx context.Context) error
	Use(ctx context.Context, args []string) error
	Entity(ctx context.Context, name string, args []string) error
}

const loggedOutHelp = "Available commands: register, login, exit"

const loggedInHelp = `Available commands:
  ledgers                       list your ledgers
  newledger                     create a ledger
  use <ledger>                  open a ledger by number, id or title
  share <user> [editor|viewer]  give another user access to the open ledger
  members                       list who can see the open ledger
  telegram|gift|offering ...    work with records ("gift help" for details)
  offering photo <id> <path>    attach a photo to an offering
  offering photourl <id>        print a download link for the photo
  logout, exit`

// runREPL starts a read-eval-print loop for the kouden CLI.
//
// It reads a line from in, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. in is shared with the prompts of the command
// handlers. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("kouden %s> ", statusFn()))
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if a.isLoggedIn() {
				printlnFn(loggedInHelp)
			} else {
				printlnFn(loggedOutHelp)
			}
			continue
		case "register":
			_ = a.Register(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first. " + loggedOutHelp)
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "ledgers":
			_ = a.Ledgers(ctx)
		case "newledger":
			_ = a.NewLedger(ctx)
		case "share":
			_ = a.Share(ctx, args)
		case "members":
			_ = a.Members(ctx)
		case "use":
			_ = a.Use(ctx, args)
		case "telegram", "telegrams", "gift", "gifts", "offering", "offerings":
			_ = a.Entity(ctx, cmd, args)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
