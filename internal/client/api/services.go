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

// ServiceFilters задает параметры поиска по объявлениям услуг.
// HourlyRate и ExperienceYears фильтруют по точному совпадению,
// как их понимает сервер.
type ServiceFilters struct {
	AvailableOnly   bool   // только is_available=true
	HourlyRate      string // точная ставка, например "25.00"
	ExperienceYears int    // точное число лет опыта, 0 — не фильтровать
	Search          string // полнотекстовый поиск по title/description
	Ordering        string // поле сортировки, например "-created_at" или "hourly_rate"
}

func (f ServiceFilters) values() url.Values {
	query := url.Values{}
	if f.AvailableOnly {
		query.Set("is_available", "true")
	}
	if f.HourlyRate != "" {
		query.Set("hourly_rate", f.HourlyRate)
	}
	if f.ExperienceYears > 0 {
		query.Set("experience_years", strconv.Itoa(f.ExperienceYears))
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Ordering != "" {
		query.Set("ordering", f.Ordering)
	}
	return query
}

// ListServices возвращает объявления услуг по фильтрам (GET /services/).
// Endpoint публичный: работает и без сохраненного токена.
func (c *Client) ListServices(ctx context.Context, filters ServiceFilters) ([]models.Service, error) {
	var services []models.Service
	if err := c.doRequest(ctx, http.MethodGet, "/services/", filters.values(), nil, &services); err != nil {
		return nil, fmt.Errorf("list services request failed: %w", err)
	}
	return services, nil
}

// GetService возвращает одно объявление по ID
func (c *Client) GetService(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	path := fmt.Sprintf("/services/%d/", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &service); err != nil {
		return nil, fmt.Errorf("get service request failed: %w", err)
	}
	return &service, nil
}

// CreateService создает объявление от имени текущего пользователя
func (c *Client) CreateService(ctx context.Context, req api.ServiceRequest) (*models.Service, error) {
	var service models.Service
	if err := c.doRequest(ctx, http.MethodPost, "/services/", nil, req, &service); err != nil {
		return nil, fmt.Errorf("create service request failed: %w", err)
	}
	return &service, nil
}

// UpdateService обновляет объявление; право есть только у его владельца
func (c *Client) UpdateService(ctx context.Context, id int64, req api.ServiceRequest) (*models.Service, error) {
	var service models.Service
	path := fmt.Sprintf("/services/%d/", id)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, req, &service); err != nil {
		return nil, fmt.Errorf("update service request failed: %w", err)
	}
	return &service, nil
}

// DeleteService удаляет объявление; право есть только у его владельца
func (c *Client) DeleteService(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/services/%d/", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete service request failed: %w", err)
	}
	return nil
}

// MyServices возвращает объявления текущего пользователя
// (GET /services/my_services/)
func (c *Client) MyServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.doRequest(ctx, http.MethodGet, "/services/my_services/", nil, nil, &services); err != nil {
		return nil, fmt.Errorf("my services request failed: %w", err)
	}
	return services, nil
}
