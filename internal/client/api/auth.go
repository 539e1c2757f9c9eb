package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assembleally/client/pkg/api"
)

// Login обменивает учетные данные на пару токенов (POST /token/).
// При неверных учетных данных сервер отвечает 401.
func (c *Client) Login(ctx context.Context, creds api.Credentials) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/token/", nil, creds, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя (POST /register/).
// Ответ содержит токены и созданного пользователя.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/register/", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// RefreshToken обменивает refresh token на новый access token
// (POST /token/refresh/). Клиент не вызывает его автоматически:
// просроченный access token завершает сессию через политику 401.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*api.RefreshResponse, error) {
	var resp api.RefreshResponse
	req := api.RefreshRequest{Refresh: refreshToken}
	if err := c.doRequest(ctx, http.MethodPost, "/token/refresh/", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}
