package cli

import (
	"context"
	"fmt"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/client/auth"
	"github.com/assembleally/client/internal/client/messaging"
	"github.com/assembleally/client/internal/client/storage"
)

// Cli связывает команды с API клиентом и сервисами
type Cli struct {
	apiClient   *api.Client
	authService *auth.Service
	poller      *messaging.Poller
	sessions    storage.SessionStorage
}

// New создает CLI поверх собранных зависимостей
func New(apiClient *api.Client, authService *auth.Service, poller *messaging.Poller, sessions storage.SessionStorage) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authService: authService,
		poller:      poller,
		sessions:    sessions,
	}
}

// Run выполняет команду верхнего уровня
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "services":
		return c.runServices(ctx, args)
	case "projects":
		return c.runProjects(ctx, args)
	case "messages":
		return c.runMessages(ctx, args)
	case "reviews":
		return c.runReviews(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func PrintUsage() {
	fmt.Println("AssembleAlly Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  assembleally [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version              Show version information")
	fmt.Println("  --server URL           API base URL (default: http://localhost:8000/api)")
	fmt.Println("  --db PATH              Path to local session database (default: assembleally-client.db)")
	fmt.Println("  --poll-interval DUR    Conversation poll interval (default: 10s)")
	fmt.Println("  --log-level LEVEL      Log level: debug, info, warn, error (default: info)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                              Register a new account")
	fmt.Println("  login                                 Login to the marketplace")
	fmt.Println("  logout                                Delete the local session")
	fmt.Println("  status                                Show authentication status")
	fmt.Println()
	fmt.Println("  profile show                          Show your profile")
	fmt.Println("  profile update [flags]                Update profile fields")
	fmt.Println()
	fmt.Println("  services list [flags]                 Browse service listings")
	fmt.Println("  services my                           List your own services")
	fmt.Println("  services get <id>                     Show one service")
	fmt.Println("  services create [flags]               Post a new service")
	fmt.Println("  services update <id> [flags]          Update your service")
	fmt.Println("  services delete <id>                  Delete your service")
	fmt.Println()
	fmt.Println("  projects list [flags]                 Browse assembly projects")
	fmt.Println("  projects my                           Projects you posted")
	fmt.Println("  projects assigned                     Projects assigned to you")
	fmt.Println("  projects get <id>                     Show one project")
	fmt.Println("  projects create [flags]               Post a new project")
	fmt.Println("  projects update <id> [flags]          Update your project")
	fmt.Println("  projects delete <id>                  Delete your project")
	fmt.Println("  projects assign <id> <user_id>        Assign an assembler to your open project")
	fmt.Println("  projects set-status <id> <status>     Complete or cancel a project")
	fmt.Println()
	fmt.Println("  messages conversations                List your conversations")
	fmt.Println("  messages with <user_id>               Show a conversation")
	fmt.Println("  messages send <user_id> <text>        Send a message")
	fmt.Println("  messages watch <user_id>              Follow a conversation (Ctrl+C to stop)")
	fmt.Println()
	fmt.Println("  reviews for <user_id>                 Reviews about a user")
	fmt.Println("  reviews create [flags]                Review a completed project")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  assembleally register")
	fmt.Println("  assembleally login")
	fmt.Println("  assembleally services list --available --search wardrobe")
	fmt.Println("  assembleally projects create --title 'PAX wardrobe' --furniture-type wardrobe \\")
	fmt.Println("      --location 'Springfield' --budget 120.00 --description 'Two sliding doors'")
	fmt.Println("  assembleally projects assign 5 12")
	fmt.Println("  assembleally messages watch 12")
	fmt.Println("  assembleally reviews create --project 5 --reviewee 12 --rating 5 --comment 'Fast and tidy'")
}
