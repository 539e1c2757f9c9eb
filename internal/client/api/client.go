package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/assembleally/client/internal/client/storage"
)

// Client представляет HTTP клиент для взаимодействия с сервером маркетплейса.
// Единая точка исходящих запросов: перед каждым запросом подставляет
// access token из хранилища сессии, на любой ответ 401 очищает сессию
// и вызывает обработчик истекшей сессии.
type Client struct {
	httpClient       *http.Client
	baseURL          string
	sessions         storage.SessionStorage
	onSessionExpired func()
	logger           zerolog.Logger
}

// NewClient создает новый API клиент.
// baseURL задается один раз при старте и используется для всех запросов.
func NewClient(baseURL string, sessions storage.SessionStorage, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// OnSessionExpired устанавливает обработчик, вызываемый после очистки
// сессии по ответу 401. В веб-клиенте это был редирект на страницу логина.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// doRequest выполняет HTTP запрос с политиками сессии
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// Если токен сохранен, запрос идет авторизованным;
	// без токена запрос уходит как есть, публичные endpoints это допускают
	token, err := c.sessions.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	// Глобальная политика: истекший/невалидный токен завершает сессию
	// целиком, каким бы endpoint ни был вызван
	if resp.StatusCode == http.StatusUnauthorized {
		return c.expireSession(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorBody(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// expireSession очищает сессию и уведомляет обработчик, ровно по одному
// разу на ответ 401
func (c *Client) expireSession(ctx context.Context) error {
	if err := c.sessions.Clear(ctx); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear session after 401")
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	return ErrSessionExpired
}

// parseErrorBody классифицирует тело ошибки сервера.
// DRF отвечает либо {"detail": "..."}, либо map поле -> список сообщений.
func parseErrorBody(statusCode int, body []byte) error {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return &StatusError{StatusCode: statusCode, Detail: string(bytes.TrimSpace(body))}
	}

	if raw, ok := payload["detail"]; ok {
		var detail string
		if err := json.Unmarshal(raw, &detail); err == nil {
			return &StatusError{StatusCode: statusCode, Detail: detail}
		}
	}

	if statusCode == http.StatusBadRequest && len(payload) > 0 {
		fields := make(map[string][]string, len(payload))
		for name, raw := range payload {
			var messages []string
			if err := json.Unmarshal(raw, &messages); err == nil {
				fields[name] = messages
				continue
			}
			var message string
			if err := json.Unmarshal(raw, &message); err == nil {
				fields[name] = []string{message}
			}
		}
		if len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
	}

	return &StatusError{StatusCode: statusCode, Detail: string(bytes.TrimSpace(body))}
}
