package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/models"
	pkgapi "github.com/assembleally/client/pkg/api"
)

func (c *Cli) runServices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: assembleally services <list|my|get|create|update|delete>")
	}

	switch args[0] {
	case "list":
		return c.runServicesList(ctx, args[1:])
	case "my":
		return c.runServicesMy(ctx)
	case "get":
		return c.runServicesGet(ctx, args[1:])
	case "create":
		return c.runServicesCreate(ctx, args[1:])
	case "update":
		return c.runServicesUpdate(ctx, args[1:])
	case "delete":
		return c.runServicesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown services subcommand: %s", args[0])
	}
}

func (c *Cli) runServicesList(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("services list", flag.ContinueOnError)
	available := flags.Bool("available", false, "Only services taking orders")
	rate := flags.String("rate", "", "Exact hourly rate, e.g. 25.00")
	years := flags.Int("years", 0, "Exact years of experience")
	search := flags.String("search", "", "Search in title and description")
	ordering := flags.String("ordering", "", "Sort field, e.g. hourly_rate or -created_at")

	if err := flags.Parse(args); err != nil {
		return err
	}

	services, err := c.apiClient.ListServices(ctx, api.ServiceFilters{
		AvailableOnly:   *available,
		HourlyRate:      *rate,
		ExperienceYears: *years,
		Search:          *search,
		Ordering:        *ordering,
	})
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== Services ===")
	fmt.Println()
	printServiceList(services)
	return nil
}

func (c *Cli) runServicesMy(ctx context.Context) error {
	services, err := c.apiClient.MyServices(ctx)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== My Services ===")
	fmt.Println()
	if len(services) == 0 {
		fmt.Println("You have no services yet.")
		fmt.Println("Use 'assembleally services create' to post your first one.")
		return nil
	}
	printServiceList(services)
	return nil
}

func (c *Cli) runServicesGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing service ID. Usage: assembleally services get <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	service, err := c.apiClient.GetService(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== Service Details ===")
	fmt.Println()
	fmt.Printf("Title:       %s\n", service.Title)
	fmt.Printf("ID:          %d\n", service.ID)
	fmt.Printf("Provider:    %s (%s)\n", service.ProviderName, formatRating(service.ProviderRating))
	fmt.Printf("Rate:        %s/hour\n", service.HourlyRate)
	fmt.Printf("Experience:  %d year(s)\n", service.ExperienceYears)
	fmt.Printf("Available:   %t\n", service.IsAvailable)
	fmt.Printf("Description: %s\n", service.Description)

	return nil
}

func (c *Cli) runServicesCreate(ctx context.Context, args []string) error {
	req, err := parseServiceFlags("services create", args)
	if err != nil {
		return err
	}

	if err := pkgapi.Validate(*req); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	service, err := c.apiClient.CreateService(ctx, *req)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Service posted!")
	fmt.Printf("ID: %d, %s at %s/hour\n", service.ID, service.Title, service.HourlyRate)
	return nil
}

func (c *Cli) runServicesUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing service ID. Usage: assembleally services update <id> [flags]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	req, err := parseServiceFlags("services update", args[1:])
	if err != nil {
		return err
	}

	if err := pkgapi.Validate(*req); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	service, err := c.apiClient.UpdateService(ctx, id, *req)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Service updated!")
	fmt.Printf("ID: %d, %s at %s/hour\n", service.ID, service.Title, service.HourlyRate)
	return nil
}

func (c *Cli) runServicesDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing service ID. Usage: assembleally services delete <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Service deleted.")
	return nil
}

// parseServiceFlags разбирает флаги создания/обновления объявления
func parseServiceFlags(name string, args []string) (*pkgapi.ServiceRequest, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	title := flags.String("title", "", "Service title")
	description := flags.String("description", "", "What you offer")
	rate := flags.String("rate", "", "Hourly rate, e.g. 25.00")
	years := flags.Int("years", 0, "Years of experience")
	available := flags.Bool("available", true, "Currently taking orders")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return &pkgapi.ServiceRequest{
		Title:           *title,
		Description:     *description,
		HourlyRate:      *rate,
		ExperienceYears: *years,
		IsAvailable:     *available,
	}, nil
}

func printServiceList(services []models.Service) {
	if len(services) == 0 {
		fmt.Println("No services found.")
		return
	}

	fmt.Printf("Found %d service(s):\n", len(services))
	fmt.Println()
	for i := range services {
		printService(i+1, &services[i])
	}
}
