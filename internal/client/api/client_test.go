package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assembleally/client/internal/client/storage"
	"github.com/assembleally/client/internal/models"
	"github.com/assembleally/client/pkg/api"
)

// sessionStub — хранилище сессии в памяти для тестов клиента
type sessionStub struct {
	token      string
	refresh    string
	user       *models.Profile
	clearCalls int
}

var _ storage.SessionStorage = (*sessionStub)(nil)

func (s *sessionStub) SetSession(_ context.Context, update storage.SessionUpdate) error {
	if update.AccessToken != nil {
		s.token = *update.AccessToken
	}
	if update.RefreshToken != nil {
		s.refresh = *update.RefreshToken
	}
	if update.User != nil {
		s.user = update.User
	}
	return nil
}

func (s *sessionStub) AccessToken(context.Context) (string, error)  { return s.token, nil }
func (s *sessionStub) RefreshToken(context.Context) (string, error) { return s.refresh, nil }

func (s *sessionStub) CachedUser(context.Context) (*models.Profile, error) { return s.user, nil }

func (s *sessionStub) IsAuthenticated(context.Context) (bool, error) { return s.token != "", nil }

func (s *sessionStub) Clear(context.Context) error {
	s.clearCalls++
	s.token = ""
	s.refresh = ""
	s.user = nil
	return nil
}

func newTestClient(serverURL string, sessions storage.SessionStorage) *Client {
	return NewClient(serverURL, sessions, zerolog.Nop())
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	sessions := &sessionStub{}
	client := newTestClient("http://localhost:8000/api", sessions)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000/api", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_AttachesBearerToken проверяет, что сохраненный access token
// подставляется в каждый исходящий запрос
func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Profile{ID: 1, Username: "alice"})
	}))
	defer server.Close()

	sessions := &sessionStub{token: "stored-token"}
	client := newTestClient(server.URL, sessions)

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuthorization)
	assert.Equal(t, "alice", profile.Username)
}

// TestClient_PublicRequestWithoutToken проверяет, что без токена запрос
// уходит неавторизованным и публичный endpoint отвечает данными
func TestClient_PublicRequestWithoutToken(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		assert.Equal(t, "/services/", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("is_available"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]models.Service{
			{ID: 1, Title: "Wardrobe assembly", IsAvailable: true},
		})
	}))
	defer server.Close()

	sessions := &sessionStub{}
	client := newTestClient(server.URL, sessions)

	services, err := client.ListServices(context.Background(), ServiceFilters{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Empty(t, gotAuthorization)
	// Ответ 200 не должен трогать сессию
	assert.Zero(t, sessions.clearCalls)
}

// TestClient_UnauthorizedClearsSession проверяет глобальную политику 401:
// любая конечная точка, очистка сессии и уведомление ровно по одному разу
func TestClient_UnauthorizedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired"})
	}))
	defer server.Close()

	sessions := &sessionStub{token: "stale-token", refresh: "stale-refresh"}
	client := newTestClient(server.URL, sessions)

	expiredCalls := 0
	client.OnSessionExpired(func() {
		expiredCalls++
	})

	// Запускающее действие — отправка сообщения, не auth endpoint
	message, err := client.SendMessage(context.Background(), 42, "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, message)
	assert.Equal(t, 1, sessions.clearCalls)
	assert.Equal(t, 1, expiredCalls)
	assert.Empty(t, sessions.token)
	assert.Empty(t, sessions.refresh)
}

// TestClient_TransportError проверяет классификацию сетевого сбоя
func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Закрываем сервер заранее: ответа не будет вовсе
	server.Close()

	sessions := &sessionStub{token: "token"}
	client := newTestClient(server.URL, sessions)

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	// Сетевой сбой не является поводом завершать сессию
	assert.Zero(t, sessions.clearCalls)
}

// TestClient_Login проверяет успешный обмен учетных данных на токены
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds api.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)
		assert.Equal(t, "secret", creds.Password)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.TokenResponse{Access: "abc", Refresh: "xyz"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{})

	resp, err := client.Login(context.Background(), api.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Access)
	assert.Equal(t, "xyz", resp.Refresh)
	assert.Nil(t, resp.User)
}

// TestClient_Register проверяет декодирование ответа регистрации с пользователем
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register/", r.URL.Path)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access":  "new-access",
			"refresh": "new-refresh",
			"user": map[string]interface{}{
				"id":       9,
				"username": "bob",
				"email":    "bob@example.com",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{})

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.Access)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(9), resp.User.ID)
	assert.Equal(t, "bob", resp.User.Username)
}

// TestClient_ValidationError проверяет разбор ошибок валидации по полям
func TestClient_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"username": []string{"A user with that username already exists."},
			"email":    []string{"Enter a valid email address."},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{})

	_, err := client.Register(context.Background(), api.RegisterRequest{
		Username:        "taken",
		Email:           "broken",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "username")
	assert.Contains(t, validationErr.Fields, "email")
	assert.Equal(t, []string{"Enter a valid email address."}, validationErr.Fields["email"])
}
