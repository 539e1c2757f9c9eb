package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/assembleally/client/internal/models"
	"github.com/assembleally/client/pkg/api"
)

// Conversations возвращает список диалогов текущего пользователя:
// по строке на собеседника, с последним сообщением и числом непрочитанных
// (GET /messages/conversations/)
func (c *Client) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := c.doRequest(ctx, http.MethodGet, "/messages/conversations/", nil, nil, &conversations); err != nil {
		return nil, fmt.Errorf("conversations request failed: %w", err)
	}
	return conversations, nil
}

// MessagesWith возвращает переписку с одним пользователем,
// упорядоченную по created_at (GET /messages/with_user/?user_id=).
// Сервер попутно помечает входящие сообщения прочитанными.
func (c *Client) MessagesWith(ctx context.Context, userID int64) ([]models.Message, error) {
	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(userID, 10))

	var messages []models.Message
	if err := c.doRequest(ctx, http.MethodGet, "/messages/with_user/", query, nil, &messages); err != nil {
		return nil, fmt.Errorf("messages request failed: %w", err)
	}
	return messages, nil
}

// SendMessage отправляет сообщение пользователю (POST /messages/)
// и возвращает созданное сообщение
func (c *Client) SendMessage(ctx context.Context, receiverID int64, content string) (*models.Message, error) {
	var message models.Message
	req := api.MessageRequest{Receiver: receiverID, Content: content}
	if err := c.doRequest(ctx, http.MethodPost, "/messages/", nil, req, &message); err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	return &message, nil
}
