package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/assembleally/client/internal/models"
)

func (c *Cli) runMessages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: assembleally messages <conversations|with|send|watch>")
	}

	switch args[0] {
	case "conversations":
		return c.runConversations(ctx)
	case "with":
		return c.runMessagesWith(ctx, args[1:])
	case "send":
		return c.runMessagesSend(ctx, args[1:])
	case "watch":
		return c.runMessagesWatch(ctx, args[1:])
	default:
		return fmt.Errorf("unknown messages subcommand: %s", args[0])
	}
}

func (c *Cli) runConversations(ctx context.Context) error {
	conversations, err := c.apiClient.Conversations(ctx)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Println("=== Conversations ===")
	fmt.Println()
	if len(conversations) == 0 {
		fmt.Println("No conversations yet.")
		fmt.Println("Use 'assembleally messages send <user_id> <text>' to start one.")
		return nil
	}

	for i, conv := range conversations {
		unread := ""
		if conv.UnreadCount > 0 {
			unread = fmt.Sprintf(" [%d unread]", conv.UnreadCount)
		}
		fmt.Printf("%d. %s (user %d)%s\n", i+1, conv.User.Username, conv.User.ID, unread)
		if conv.LatestMessage != nil {
			fmt.Printf("   %s: %s\n", conv.LatestMessage.SenderName, previewOf(conv.LatestMessage.Content))
			fmt.Printf("   %s\n", conv.LatestMessage.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
	return nil
}

func (c *Cli) runMessagesWith(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user ID. Usage: assembleally messages with <user_id>")
	}
	userID, err := parseID(args[0])
	if err != nil {
		return err
	}

	messages, err := c.apiClient.MessagesWith(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Printf("=== Conversation with user %d ===\n", userID)
	fmt.Println()
	printMessages(messages)
	return nil
}

func (c *Cli) runMessagesSend(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: assembleally messages send <user_id> <text>")
	}
	userID, err := parseID(args[0])
	if err != nil {
		return err
	}

	content := strings.TrimSpace(strings.Join(args[1:], " "))
	if content == "" {
		return fmt.Errorf("message text cannot be empty")
	}

	message, err := c.apiClient.SendMessage(ctx, userID, content)
	if err != nil {
		return fmt.Errorf("%s", renderError(err))
	}

	fmt.Printf("✓ Message sent to %s.\n", message.ReceiverName)
	return nil
}

func (c *Cli) runMessagesWatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing user ID. Usage: assembleally messages watch <user_id>")
	}
	userID, err := parseID(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("=== Watching conversation with user %d (Ctrl+C to stop) ===\n", userID)
	fmt.Println()

	// Каждый опрос печатает свежий снимок переписки целиком
	var lastID int64
	err = c.poller.Watch(ctx, userID, func(messages []models.Message) {
		if len(messages) == 0 {
			if lastID == 0 {
				fmt.Println("No messages yet.")
			}
			return
		}
		latest := messages[len(messages)-1].ID
		if latest == lastID {
			return
		}
		lastID = latest

		fmt.Print("\033[H\033[2J") // очистка экрана перед новым снимком
		fmt.Printf("=== Conversation with user %d (Ctrl+C to stop) ===\n", userID)
		fmt.Println()
		printMessages(messages)
	})

	if errors.Is(err, context.Canceled) {
		fmt.Println()
		fmt.Println("Stopped watching.")
		return nil
	}
	return fmt.Errorf("%s", renderError(err))
}

func printMessages(messages []models.Message) {
	if len(messages) == 0 {
		fmt.Println("No messages yet.")
		return
	}
	for _, msg := range messages {
		fmt.Printf("[%s] %s:\n", msg.CreatedAt.Format("2006-01-02 15:04"), msg.SenderName)
		fmt.Printf("  %s\n", msg.Content)
	}
}

// previewOf обрезает длинный текст для списка диалогов
func previewOf(content string) string {
	const maxPreview = 60
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) <= maxPreview {
		return content
	}
	return content[:maxPreview] + "..."
}
