// Package cli is the terminal front end: a synchronous prompt and print loop
// over the marketplace services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
)

// PasswordReader reads one secret line without echoing it.
type PasswordReader func() (string, error)

type App struct {
	svc      *services.Service
	in       *bufio.Reader
	out      io.Writer
	password PasswordReader
}

type Option func(*App)

func WithPasswordReader(r PasswordReader) Option {
	return func(a *App) { a.password = r }
}

func New(svc *services.Service, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{svc: svc, in: bufio.NewReader(in), out: out}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run shows the auth menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	err := a.authMenu(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) authMenu(ctx context.Context) error {
	for {
		a.println("\nWelcome to PESUConnect")
		a.println("1. Login")
		a.println("2. Sign Up")
		a.println("3. Exit")
		choice, err := a.prompt("Enter your choice (1-3): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			user, err := a.login(ctx)
			if err != nil {
				return err
			}
			if user != nil {
				if err := a.dashboard(ctx, user); err != nil {
					return err
				}
			}
		case "2":
			if err := a.register(ctx); err != nil {
				return err
			}
		case "3":
			a.println("\nGoodbye!")
			return nil
		default:
			a.println("\nInvalid choice. Please try again.")
		}
	}
}

func (a *App) dashboard(ctx context.Context, user *models.Student) error {
	for {
		a.println("\n--- Dashboard ---")
		a.printf("Logged in as: %s (ID: %d)\n", user.Name, user.StudentID)
		a.println("1. View Available Projects (and Apply)")
		a.println("2. Create a New Project")
		a.println("3. Manage My Projects (Review Applications)")
		a.println("4. Manage My Skills")
		a.println("5. View Active Contracts")
		a.println("6. View My Reviews")
		a.println("7. Logout")
		choice, err := a.prompt("Enter your choice (1-7): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.viewProjects(ctx, user)
		case "2":
			err = a.createProject(ctx, user)
		case "3":
			err = a.manageMyProjects(ctx, user)
		case "4":
			err = a.manageSkills(ctx, user)
		case "5":
			err = a.viewContracts(ctx, user)
		case "6":
			err = a.viewReviews(ctx, user)
		case "7":
			a.println("\nLogging you out. Goodbye!")
			return nil
		default:
			a.println("\nInvalid choice. Please enter a number from 1-7.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt prints label and returns the next input line, trimmed.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) promptPassword(label string) (string, error) {
	if a.password == nil {
		return a.prompt(label)
	}
	fmt.Fprint(a.out, label)
	pw, err := a.password()
	fmt.Fprintln(a.out)
	return pw, err
}

// selectID reads IDs until one passes valid, or the user enters q.
// ok is false when the user backed out.
func (a *App) selectID(label string, valid func(int64) bool, invalidMsg string) (id int64, ok bool, err error) {
	for {
		choice, err := a.prompt(label)
		if err != nil {
			return 0, false, err
		}
		if strings.ToLower(choice) == "q" {
			return 0, false, nil
		}
		id, convErr := strconv.ParseInt(choice, 10, 64)
		if convErr != nil {
			a.println("Error: Please enter a number or 'q'.")
			continue
		}
		if !valid(id) {
			a.println(invalidMsg)
			continue
		}
		return id, true, nil
	}
}

// describe renders a service error for the terminal.
func describe(err error) string {
	var fe *services.FormError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
