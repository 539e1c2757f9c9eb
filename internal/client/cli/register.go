package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/assembleally/client/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Register ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	passwordConfirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	firstName, err := readInput("First name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}

	lastName, err := readInput("Last name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	isAssembler, err := readYesNo("Will you offer assembly services?")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	req := pkgapi.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: passwordConfirm,
		FirstName:       firstName,
		LastName:        lastName,
		IsAssembler:     isAssembler,
	}

	if isAssembler {
		bio, err := readInput("Short bio (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read bio: %w", err)
		}
		location, err := readInput("Location (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read location: %w", err)
		}
		phone, err := readInput("Phone (optional): ")
		if err != nil {
			return fmt.Errorf("failed to read phone: %w", err)
		}
		req.Bio = bio
		req.Location = location
		req.Phone = phone
	}

	fmt.Println()
	fmt.Println("Creating account...")

	result, err := c.authService.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	if result.User != nil {
		fmt.Printf("Welcome to AssembleAlly, %s!\n", result.User.FullName())
	}
	fmt.Println("You are now logged in.")

	return nil
}
