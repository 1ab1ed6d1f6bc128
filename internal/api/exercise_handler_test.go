package api

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"academia/workout-app/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// mockCatalogService is a func-field fake for service.CatalogService.
type mockCatalogService struct {
	createFn func(ctx context.Context, ex *domain.Exercise) (*domain.Exercise, error)
	getFn    func(ctx context.Context, id string) (*domain.Exercise, error)
	listFn   func(ctx context.Context) ([]domain.Exercise, error)
	searchFn func(ctx context.Context, filter service.ExerciseFilter) ([]domain.Exercise, error)
	updateFn func(ctx context.Context, id string, fields repository.Fields) (*domain.Exercise, error)
}

func (m *mockCatalogService) CreateExercise(ctx context.Context, ex *domain.Exercise) (*domain.Exercise, error) {
	return m.createFn(ctx, ex)
}
func (m *mockCatalogService) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	return m.getFn(ctx, id)
}
func (m *mockCatalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return m.listFn(ctx)
}
func (m *mockCatalogService) SearchExercises(ctx context.Context, filter service.ExerciseFilter) ([]domain.Exercise, error) {
	return m.searchFn(ctx, filter)
}
func (m *mockCatalogService) UpdateExercise(ctx context.Context, id string, fields repository.Fields) (*domain.Exercise, error) {
	return m.updateFn(ctx, id, fields)
}

func newExerciseRouter(svc service.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewExerciseHandler(svc)
	router.POST("/api/v1/exercises", handler.CreateExercise)
	router.GET("/api/v1/exercises", handler.ListExercises)
	router.GET("/api/v1/exercises/:id", handler.GetExercise)
	return router
}

func TestListExercisesPassesFilterParams(t *testing.T) {
	var gotFilter service.ExerciseFilter
	svc := &mockCatalogService{
		searchFn: func(ctx context.Context, filter service.ExerciseFilter) ([]domain.Exercise, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	router := newExerciseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises?muscle=peito&level=iniciante&q=sup", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotFilter.Muscle != "peito" || gotFilter.Level != "iniciante" || gotFilter.Query != "sup" {
		t.Errorf("filter = %+v", gotFilter)
	}
	// No matches must render as an empty array, not null.
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestCreateExerciseConflict(t *testing.T) {
	svc := &mockCatalogService{
		createFn: func(ctx context.Context, ex *domain.Exercise) (*domain.Exercise, error) {
			return nil, service.ErrDuplicateExercise
		},
	}
	router := newExerciseRouter(svc)

	body := `{"id":"ex-supino","nome":"Supino","gruposMusculares":["peito"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exercises", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestCreateExerciseMissingRequiredField(t *testing.T) {
	router := newExerciseRouter(&mockCatalogService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exercises", strings.NewReader(`{"nome":"Supino"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetExerciseNotFound(t *testing.T) {
	svc := &mockCatalogService{
		getFn: func(ctx context.Context, id string) (*domain.Exercise, error) {
			return nil, service.ErrExerciseNotFound
		},
	}
	router := newExerciseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/ex-nope", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["error"] == "" {
		t.Errorf("body = %s, want error message", w.Body.String())
	}
}
