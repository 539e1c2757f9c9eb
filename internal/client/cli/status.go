package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	authenticated, user, err := c.authService.Status(ctx)
	if err != nil {
		return err
	}

	if !authenticated {
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'assembleally login' to authenticate.")
		return nil
	}

	fmt.Println("Status: Authenticated")

	if user == nil {
		// Токен есть, а снимка профиля нет: логин прошел без профиля
		fmt.Println()
		fmt.Println("No cached profile. Run 'assembleally profile show' to load it.")
		return nil
	}

	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Name:     %s\n", user.FullName())
	fmt.Printf("Email:    %s\n", user.Email)
	if user.IsAssembler {
		fmt.Printf("Role:     assembler, %s\n", formatRating(user.AverageRating))
	} else {
		fmt.Println("Role:     customer")
	}

	return nil
}
