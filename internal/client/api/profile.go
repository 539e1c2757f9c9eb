package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assembleally/client/internal/models"
	"github.com/assembleally/client/pkg/api"
)

// GetProfile загружает профиль текущего пользователя (GET /profiles/me/)
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.doRequest(ctx, http.MethodGet, "/profiles/me/", nil, nil, &profile); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &profile, nil
}

// UpdateProfile частично обновляет профиль текущего пользователя
// (PUT /profiles/update_me/) и возвращает обновленный профиль
func (c *Client) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	if err := c.doRequest(ctx, http.MethodPut, "/profiles/update_me/", nil, update, &profile); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &profile, nil
}
