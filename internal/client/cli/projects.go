package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/models"
	pkgapi "github.com/assembleally/client/pkg/api"
)

func (c *Cli) runProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: assembleally projects <list|my|assigned|get|create|update|delete|assign|set-status>")
	}

	switch args[0] {
	case "list":
		return c.runProjectsList(ctx, args[1:])
	case "my":
		return c.runProjectsMy(ctx)
	case "assigned":
		return c.runProjectsAssigned(ctx)
	case "get":
		return c.runProjectsGet(ctx, args[1:])
	case "create":
		return c.runProjectsCreate(ctx, args[1:])
	case "update":
		return c.runProjectsUpdate(ctx, args[1:])
	case "delete":
		return c.runProjectsDelete(ctx, args[1:])
	case "assign":
		return c.runProjectsAssign(ctx, args[1:])
	case "set-status":
		return c.runProjectsSetStatus(ctx, args[1:])
	default:
		return fmt.Errorf("unknown projects subcommand: %s", args[0])
	}
}

func (c *Cli) runProjectsList(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("projects list", flag.ContinueOnError)
	status := flags.String("status", "", "Filter by status: open, in_progress, completed, cancelled")
	furnitureType := flags.String("furniture-type", "", "Filter by furniture type")
	budget := flags.String("budget", "", "Exact budget, e.g. 120.00")
	search := flags.String("search", "", "Search in title, description and location")
	ordering := flags.String("ordering", "", "Sort field, e.g. budget or -created_at")

	if err := flags.Parse(args); err != nil {
		return err
	}

	filterStatus := models.ProjectStatus(*status)
	if *status != "" && !filterStatus.Valid() {
		return fmt.Errorf("invalid status %q; use open, in_progress, completed or cancelled", *status)
	}

	projects, err := c.apiClient.ListProjects(ctx, api.ProjectFilters{
		Status:        filterStatus,
		FurnitureType: *furnitureType,
		Budget:        *budget,
		Search:        *search,
		Ordering:      *ordering,
	})
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== Projects ===")
	fmt.Println()
	printProjectList(projects)
	return nil
}

func (c *Cli) runProjectsMy(ctx context.Context) error {
	projects, err := c.apiClient.MyProjects(ctx)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== My Projects ===")
	fmt.Println()
	if len(projects) == 0 {
		fmt.Println("You have no projects yet.")
		fmt.Println("Use 'assembleally projects create' to post your first one.")
		return nil
	}
	printProjectList(projects)
	return nil
}

func (c *Cli) runProjectsAssigned(ctx context.Context) error {
	projects, err := c.apiClient.AssignedToMe(ctx)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== Assigned To Me ===")
	fmt.Println()
	printProjectList(projects)
	return nil
}

func (c *Cli) runProjectsGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project ID. Usage: assembleally projects get <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	project, err := c.apiClient.GetProject(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== Project Details ===")
	fmt.Println()
	fmt.Printf("Title:       %s\n", project.Title)
	fmt.Printf("ID:          %d\n", project.ID)
	fmt.Printf("Status:      %s\n", project.Status)
	fmt.Printf("Creator:     %s\n", project.CreatorName)
	fmt.Printf("Furniture:   %s\n", project.FurnitureType)
	fmt.Printf("Location:    %s\n", project.Location)
	fmt.Printf("Budget:      %s\n", project.Budget)
	if project.AssignedToID != nil {
		fmt.Printf("Assembler:   %s\n", project.AssignedToName)
	}
	fmt.Printf("Description: %s\n", project.Description)

	return nil
}

func (c *Cli) runProjectsCreate(ctx context.Context, args []string) error {
	req, err := parseProjectFlags("projects create", args)
	if err != nil {
		return err
	}

	if err := pkgapi.Validate(*req); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	project, err := c.apiClient.CreateProject(ctx, *req)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Project posted!")
	fmt.Printf("ID: %d, %s, budget %s (status: %s)\n",
		project.ID, project.Title, project.Budget, project.Status)
	return nil
}

func (c *Cli) runProjectsUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project ID. Usage: assembleally projects update <id> [flags]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	req, err := parseProjectFlags("projects update", args[1:])
	if err != nil {
		return err
	}

	if err := pkgapi.Validate(*req); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	project, err := c.apiClient.UpdateProject(ctx, id, *req)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Project updated!")
	fmt.Printf("ID: %d, %s, budget %s\n", project.ID, project.Title, project.Budget)
	return nil
}

func (c *Cli) runProjectsDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project ID. Usage: assembleally projects delete <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Project deleted.")
	return nil
}

func (c *Cli) runProjectsAssign(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: assembleally projects assign <project_id> <user_id>")
	}
	projectID, err := parseID(args[0])
	if err != nil {
		return err
	}
	assigneeID, err := parseID(args[1])
	if err != nil {
		return err
	}

	project, err := c.apiClient.AssignProject(ctx, projectID, assigneeID)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("✓ Assembler assigned!")
	fmt.Printf("Project %d is now %s, assembler: %s\n",
		project.ID, project.Status, project.AssignedToName)
	return nil
}

func (c *Cli) runProjectsSetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: assembleally projects set-status <project_id> <completed|cancelled>")
	}
	projectID, err := parseID(args[0])
	if err != nil {
		return err
	}

	newStatus := models.ProjectStatus(args[1])
	if !newStatus.Valid() {
		return fmt.Errorf("invalid status %q; use open, in_progress, completed or cancelled", args[1])
	}

	// Проверяем переход локально, чтобы дать понятную ошибку
	// до похода на сервер; сервер проверяет то же самое
	project, err := c.apiClient.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	if project.Status.Terminal() {
		return fmt.Errorf("project %d is already %s; no further transitions are possible",
			projectID, project.Status)
	}
	if !project.Status.CanTransitionTo(newStatus) {
		if newStatus == models.StatusInProgress {
			return fmt.Errorf("a project moves to in_progress by assigning an assembler; use 'assembleally projects assign'")
		}
		return fmt.Errorf("cannot change project %d from %s to %s", projectID, project.Status, newStatus)
	}

	updated, err := c.apiClient.UpdateProjectStatus(ctx, projectID, newStatus)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Printf("✓ Project %d is now %s.\n", updated.ID, updated.Status)
	if updated.Status == models.StatusCompleted {
		fmt.Println("You can now leave a review: 'assembleally reviews create'.")
	}
	return nil
}

// parseProjectFlags разбирает флаги создания/обновления проекта
func parseProjectFlags(name string, args []string) (*pkgapi.ProjectRequest, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	title := flags.String("title", "", "Project title")
	description := flags.String("description", "", "What needs to be assembled")
	furnitureType := flags.String("furniture-type", "", "Furniture type, e.g. wardrobe")
	location := flags.String("location", "", "Where the work happens")
	budget := flags.String("budget", "", "Budget, e.g. 120.00")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return &pkgapi.ProjectRequest{
		Title:         *title,
		Description:   *description,
		FurnitureType: *furnitureType,
		Location:      *location,
		Budget:        *budget,
	}, nil
}

func printProjectList(projects []models.Project) {
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return
	}

	fmt.Printf("Found %d project(s):\n", len(projects))
	fmt.Println()
	for i := range projects {
		printProject(i+1, &projects[i])
	}
}
