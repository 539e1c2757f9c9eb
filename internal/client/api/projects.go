package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/assembleally/client/internal/models"
	"github.com/assembleally/client/pkg/api"
)

// ProjectFilters задает параметры поиска по проектам
type ProjectFilters struct {
	Status        models.ProjectStatus // фильтр по статусу
	FurnitureType string               // фильтр по типу мебели
	Budget        string               // точный бюджет, например "120.00"
	Search        string               // поиск по title/description/location/furniture_type
	Ordering      string               // поле сортировки, например "budget" или "-created_at"
}

func (f ProjectFilters) values() url.Values {
	query := url.Values{}
	if f.Status != "" {
		query.Set("status", string(f.Status))
	}
	if f.FurnitureType != "" {
		query.Set("furniture_type", f.FurnitureType)
	}
	if f.Budget != "" {
		query.Set("budget", f.Budget)
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Ordering != "" {
		query.Set("ordering", f.Ordering)
	}
	return query
}

// ListProjects возвращает проекты по фильтрам (GET /projects/).
// Endpoint публичный: работает и без сохраненного токена.
func (c *Client) ListProjects(ctx context.Context, filters ProjectFilters) ([]models.Project, error) {
	var projects []models.Project
	if err := c.doRequest(ctx, http.MethodGet, "/projects/", filters.values(), nil, &projects); err != nil {
		return nil, fmt.Errorf("list projects request failed: %w", err)
	}
	return projects, nil
}

// GetProject возвращает один проект по ID
func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d/", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &project); err != nil {
		return nil, fmt.Errorf("get project request failed: %w", err)
	}
	return &project, nil
}

// CreateProject размещает новый проект; созданный проект получает статус open
func (c *Client) CreateProject(ctx context.Context, req api.ProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := c.doRequest(ctx, http.MethodPost, "/projects/", nil, req, &project); err != nil {
		return nil, fmt.Errorf("create project request failed: %w", err)
	}
	return &project, nil
}

// UpdateProject обновляет описание проекта; право есть только у заказчика
func (c *Client) UpdateProject(ctx context.Context, id int64, req api.ProjectRequest) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d/", id)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, req, &project); err != nil {
		return nil, fmt.Errorf("update project request failed: %w", err)
	}
	return &project, nil
}

// DeleteProject удаляет проект; право есть только у заказчика
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/projects/%d/", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete project request failed: %w", err)
	}
	return nil
}

// MyProjects возвращает проекты, размещенные текущим пользователем
func (c *Client) MyProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.doRequest(ctx, http.MethodGet, "/projects/my_projects/", nil, nil, &projects); err != nil {
		return nil, fmt.Errorf("my projects request failed: %w", err)
	}
	return projects, nil
}

// AssignedToMe возвращает проекты, назначенные текущему пользователю как сборщику
func (c *Client) AssignedToMe(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.doRequest(ctx, http.MethodGet, "/projects/assigned_to_me/", nil, nil, &projects); err != nil {
		return nil, fmt.Errorf("assigned projects request failed: %w", err)
	}
	return projects, nil
}

// AssignProject назначает сборщика на открытый проект
// (PATCH /projects/{id}/assign/). Сервер отклоняет назначение,
// если проект не в статусе open; проект переходит в in_progress.
func (c *Client) AssignProject(ctx context.Context, id, assigneeID int64) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d/assign/", id)
	req := api.AssignRequest{AssignedTo: assigneeID}
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, req, &project); err != nil {
		return nil, fmt.Errorf("assign project request failed: %w", err)
	}
	return &project, nil
}

// UpdateProjectStatus меняет статус проекта
// (PATCH /projects/{id}/update_status/). Допустимость перехода
// контролирует сервер; из терминальных статусов переходов нет.
func (c *Client) UpdateProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d/update_status/", id)
	req := api.StatusRequest{Status: string(status)}
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, req, &project); err != nil {
		return nil, fmt.Errorf("update project status request failed: %w", err)
	}
	return &project, nil
}
