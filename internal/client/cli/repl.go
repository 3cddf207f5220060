package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mathalama/review-universities/internal/client/config"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context) error
	AdoptToken(ctx context.Context, args []string) error
	Register(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	EditProfile(ctx context.Context) error

	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	AddReview(ctx context.Context, args []string) error
	DeleteReview(ctx context.Context, args []string) error
	AddUniversity(ctx context.Context) error
	EditUniversity(ctx context.Context, args []string) error
	DeleteUniversity(ctx context.Context, args []string) error

	Users(ctx context.Context) error
	DeleteUser(ctx context.Context, args []string) error
	Reviews(ctx context.Context) error
}

const (
	helpGuest = "Available commands: list, show <id>, login, token <jwt>, register, resend, forgot, reset, help env, exit"
	helpUser  = "Available commands: list, show <id>, review <id>, delreview <id>, whoami, profile, logout, help env, exit"
	helpAdmin = "Admin commands: adduni, edituni <id>, deluni <id>, users, deluser <id>, reviews"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. Errors of a
// command are reported and the loop goes on; it ends on EOF, "exit" or
// "quit". Interactive commands read their own input from the same reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ru %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			switch {
			case len(args) > 0 && args[0] == "env":
				printlnFn(config.EnvUsage())
			case a.isAdmin():
				printlnFn(helpUser)
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpGuest)
			}

		case "login":
			cmdErr = a.Login(ctx)
		case "token":
			cmdErr = a.AdoptToken(ctx, args)
		case "register":
			cmdErr = a.Register(ctx)
		case "resend":
			cmdErr = a.ResendVerification(ctx)
		case "forgot":
			cmdErr = a.ForgotPassword(ctx)
		case "reset":
			cmdErr = a.ResetPassword(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "profile":
			cmdErr = a.EditProfile(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "review":
			cmdErr = a.AddReview(ctx, args)
		case "delreview":
			cmdErr = a.DeleteReview(ctx, args)
		case "adduni":
			cmdErr = a.AddUniversity(ctx)
		case "edituni":
			cmdErr = a.EditUniversity(ctx, args)
		case "deluni":
			cmdErr = a.DeleteUniversity(ctx, args)

		case "users":
			cmdErr = a.Users(ctx)
		case "deluser":
			cmdErr = a.DeleteUser(ctx, args)
		case "reviews":
			cmdErr = a.Reviews(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", userMessage(cmdErr))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
