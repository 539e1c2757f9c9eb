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

// TestClient_AssignProject проверяет назначение сборщика на открытый проект
func TestClient_AssignProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/projects/5/assign/", r.URL.Path)

		var req api.AssignRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(12), req.AssignedTo)

		assigned := int64(12)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Project{
			ID:           5,
			Title:        "Bookshelf assembly",
			Status:       models.StatusInProgress,
			AssignedToID: &assigned,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	project, err := client.AssignProject(context.Background(), 5, 12)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, project.Status)
	require.NotNil(t, project.AssignedToID)
	assert.Equal(t, int64(12), *project.AssignedToID)
}

// TestClient_AssignProject_NotOpen проверяет отказ сервера для проекта
// не в статусе open: ошибка доносится до вызывающего, сессия не трогается
func TestClient_AssignProject_NotOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"detail": "This project is not open for assignment.",
		})
	}))
	defer server.Close()

	sessions := &sessionStub{token: "token"}
	client := newTestClient(server.URL, sessions)

	project, err := client.AssignProject(context.Background(), 5, 12)
	require.Error(t, err)
	assert.Nil(t, project)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Zero(t, sessions.clearCalls)
}

// TestClient_UpdateProjectStatus проверяет смену статуса проекта
func TestClient_UpdateProjectStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/projects/8/update_status/", r.URL.Path)

		var req api.StatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "completed", req.Status)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Project{ID: 8, Status: models.StatusCompleted})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	project, err := client.UpdateProjectStatus(context.Background(), 8, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, project.Status)
}

// TestClient_ListProjects_Filters проверяет кодирование фильтров в query
func TestClient_ListProjects_Filters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "open", query.Get("status"))
		assert.Equal(t, "wardrobe", query.Get("furniture_type"))
		assert.Equal(t, "ikea", query.Get("search"))
		assert.Equal(t, "-created_at", query.Get("ordering"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]models.Project{{ID: 1, Status: models.StatusOpen}})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{})

	projects, err := client.ListProjects(context.Background(), ProjectFilters{
		Status:        models.StatusOpen,
		FurnitureType: "wardrobe",
		Search:        "ikea",
		Ordering:      "-created_at",
	})
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

// TestClient_GetProject_NotFound проверяет классификацию 404
func TestClient_GetProject_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."})
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	_, err := client.GetProject(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestClient_DeleteProject проверяет удаление с пустым телом ответа
func TestClient_DeleteProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/projects/3/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL, &sessionStub{token: "token"})

	require.NoError(t, client.DeleteProject(context.Background(), 3))
}
