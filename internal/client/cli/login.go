package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	result, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")

	if result.User != nil {
		fmt.Printf("Welcome back, %s!\n", result.User.FullName())
		if result.User.IsAssembler {
			fmt.Println("You are registered as an assembler.")
		}
	} else {
		// Сессия установлена, профиль дозагрузится при следующем обращении
		fmt.Println("Warning: could not load your profile right now.")
		fmt.Printf("  %s\n", renderError(result.ProfileErr))
		fmt.Println("You are still logged in; run 'assembleally profile show' to retry.")
	}

	return nil
}
