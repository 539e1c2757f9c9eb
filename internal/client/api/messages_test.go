package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assembleally/client/internal/models"
	"github.com/assembleally/client/pkg/api"
)

// TestClient_Conversations проверяет декодирование списка диалогов
func TestClient_Conversations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/messages/conversations/", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"user": map[string]interface{}{"id": 2, "username": "bob"},
				"latest_message": map[string]interface{}{
					"id":      10,
					"sender":  2,
					"receiver": 1,
					"content": "Is the wardrobe still available?",
				},
				"unread_count": 3,
			},
			{
				"user":           map[string]interface{}{"id": 4, "username": "carol"},
				"latest_message": nil,
				"unread_count":   0,
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	conversations, err := client.Conversations(context.Background())
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	assert.Equal(t, "bob", conversations[0].User.Username)
	require.NotNil(t, conversations[0].LatestMessage)
	assert.Equal(t, "Is the wardrobe still available?", conversations[0].LatestMessage.Content)
	assert.Equal(t, 3, conversations[0].UnreadCount)

	assert.Nil(t, conversations[1].LatestMessage)
	assert.Zero(t, conversations[1].UnreadCount)
}

// TestClient_MessagesWith проверяет запрос переписки с пользователем
func TestClient_MessagesWith(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/with_user/", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]models.Message{
			{ID: 1, SenderID: 7, ReceiverID: 1, Content: "Hi"},
			{ID: 2, SenderID: 1, ReceiverID: 7, Content: "Hello"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	messages, err := client.MessagesWith(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Hi", messages[0].Content)
	assert.Equal(t, "Hello", messages[1].Content)
}

// TestClient_SendMessage проверяет тело запроса и декодирование ответа
func TestClient_SendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages/", r.URL.Path)

		var req api.MessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.Receiver)
		assert.Equal(t, "When can you start?", req.Content)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Message{
			ID:         11,
			SenderID:   1,
			ReceiverID: 7,
			Content:    req.Content,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	message, err := client.SendMessage(context.Background(), 7, "When can you start?")
	require.NoError(t, err)
	assert.Equal(t, int64(11), message.ID)
	assert.Equal(t, "When can you start?", message.Content)
}

// TestClient_CreateReview_NotCompleted проверяет, что отказ сервера
// по незавершенному проекту доносится ошибкой с detail
func TestClient_CreateReview_NotCompleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"detail": "You can only review completed projects.",
		})
	}))
	defer server.Close()

	sessions := &sessionStub{token: "token"}
	client := newTestClient(server.URL, sessions)

	review, err := client.CreateReview(context.Background(), api.ReviewRequest{
		Project:  5,
		Reviewee: 2,
		Rating:   5,
		Comment:  "Great work",
	})
	require.Error(t, err)
	assert.Nil(t, review)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "You can only review completed projects.", statusErr.Detail)
	assert.Zero(t, sessions.clearCalls)
}
