package cli

import (
	"context"
	"errors"

	"github.com/anjiri1684/pesuconnect/database"
	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
)

func (a *App) login(ctx context.Context) (*models.Student, error) {
	a.println("\n--- PESUConnect Login ---")
	email, err := a.prompt("Email (@pesu.edu): ")
	if err != nil {
		return nil, err
	}
	password, err := a.promptPassword("Password (hidden): ")
	if err != nil {
		return nil, err
	}

	user, err := a.svc.Login(ctx, services.LoginInput{Email: email, Password: password})
	var fe *services.FormError
	switch {
	case errors.Is(err, database.ErrInvalidCredentials):
		a.println("\nLogin failed: Invalid credentials.")
		return nil, nil
	case errors.As(err, &fe):
		a.printf("\nLogin failed: %s\n", fe.Message)
		return nil, nil
	case err != nil:
		a.printf("Login error: %v\n", err)
		return nil, nil
	}
	a.printf("\nLogin successful! Welcome, %s.\n", user.Name)
	return user, nil
}

func (a *App) register(ctx context.Context) error {
	a.println("\n--- PESUConnect Sign Up ---")
	var in services.RegisterInput
	var err error
	if in.Email, err = a.prompt("Email (@pesu.edu): "); err != nil {
		return err
	}
	if in.Name, err = a.prompt("Full Name: "); err != nil {
		return err
	}
	if in.Password, err = a.promptPassword("Password (hidden): "); err != nil {
		return err
	}
	if in.ConfirmPassword, err = a.promptPassword("Confirm Password (hidden): "); err != nil {
		return err
	}
	if in.Password != in.ConfirmPassword {
		a.println("\nError: Passwords do not match.")
		return nil
	}
	if in.Phone, err = a.prompt("Phone Number (optional): "); err != nil {
		return err
	}
	if in.Department, err = a.prompt("Department (e.g., CSE): "); err != nil {
		return err
	}
	if in.Year, err = a.prompt("Year of Study (e.g., 2): "); err != nil {
		return err
	}

	student, err := a.svc.Register(ctx, in)
	var fe *services.FormError
	switch {
	case errors.As(err, &fe):
		a.printf("\nError: %s\n", fe.Message)
		return nil
	case err != nil:
		a.printf("\nError registering: %v\n", err)
		return nil
	}
	a.printf("\nRegistration successful! Welcome, %s. Please log in.\n", student.Name)
	a.println("Tip: After logging in, visit 'Manage My Skills' to build your profile.")
	return nil
}
