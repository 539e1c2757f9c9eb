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

// ReviewsFor возвращает отзывы о пользователе
// (GET /reviews/for_user/?user_id=)
func (c *Client) ReviewsFor(ctx context.Context, userID int64) ([]models.Review, error) {
	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(userID, 10))

	var reviews []models.Review
	if err := c.doRequest(ctx, http.MethodGet, "/reviews/for_user/", query, nil, &reviews); err != nil {
		return nil, fmt.Errorf("reviews request failed: %w", err)
	}
	return reviews, nil
}

// CreateReview оставляет отзыв по завершенному проекту (POST /reviews/).
// Сервер отклоняет отзыв, если проект не completed, автор не сторона
// проекта или отзыв по проекту уже оставлен.
func (c *Client) CreateReview(ctx context.Context, req api.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.doRequest(ctx, http.MethodPost, "/reviews/", nil, req, &review); err != nil {
		return nil, fmt.Errorf("create review request failed: %w", err)
	}
	return &review, nil
}
