package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/assembleally/client/internal/client/storage"
	pkgapi "github.com/assembleally/client/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: assembleally profile <show|update>")
	}

	switch args[0] {
	case "show":
		return c.runProfileShow(ctx)
	case "update":
		return c.runProfileUpdate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) runProfileShow(ctx context.Context) error {
	fmt.Println("=== Profile ===")
	fmt.Println()

	// Свежий профиль с сервера; попутно обновляется кеш сессии
	user, err := c.authService.RefreshProfile(ctx)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Name:     %s\n", user.FullName())
	fmt.Printf("Email:    %s\n", user.Email)
	if user.Bio != "" {
		fmt.Printf("Bio:      %s\n", user.Bio)
	}
	if user.Location != "" {
		fmt.Printf("Location: %s\n", user.Location)
	}
	if user.Phone != "" {
		fmt.Printf("Phone:    %s\n", user.Phone)
	}
	if user.IsAssembler {
		fmt.Printf("Role:     assembler, %s\n", formatRating(user.AverageRating))
	} else {
		fmt.Println("Role:     customer")
	}
	fmt.Printf("Joined:   %s\n", user.DateJoined.Format("2006-01-02"))

	return nil
}

func (c *Cli) runProfileUpdate(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("profile update", flag.ContinueOnError)
	firstName := flags.String("first-name", "", "First name")
	lastName := flags.String("last-name", "", "Last name")
	bio := flags.String("bio", "", "Short bio")
	location := flags.String("location", "", "Location")
	phone := flags.String("phone", "", "Contact phone")
	assembler := flags.Bool("assembler", false, "Offer assembly services")

	if err := flags.Parse(args); err != nil {
		return err
	}

	// Отправляются только явно переданные флаги: частичное обновление
	var update pkgapi.ProfileUpdate
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first-name":
			update.FirstName = firstName
		case "last-name":
			update.LastName = lastName
		case "bio":
			update.Bio = bio
		case "location":
			update.Location = location
		case "phone":
			update.Phone = phone
		case "assembler":
			update.IsAssembler = assembler
		}
	})

	if update.Empty() {
		return fmt.Errorf("nothing to update; pass at least one flag, e.g. --bio")
	}

	if err := pkgapi.Validate(update); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	user, err := c.apiClient.UpdateProfile(ctx, update)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	// Обновляем кешированный снимок профиля в сессии
	if err := c.sessions.SetSession(ctx, storage.SessionUpdate{User: user}); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}

	fmt.Println("✓ Profile updated!")
	fmt.Printf("Name: %s\n", user.FullName())

	return nil
}
