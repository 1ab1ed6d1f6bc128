package api

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"academia/workout-app/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the catalog service dependency.
type ExerciseHandler struct {
	catalogService service.CatalogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(catalogService service.CatalogService) *ExerciseHandler {
	return &ExerciseHandler{catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for creating a
// catalog entry.
type CreateExerciseRequest struct {
	ID               string        `json:"id"` // optional, generated when empty
	Nome             string        `json:"nome" binding:"required"`
	GruposMusculares []string      `json:"gruposMusculares" binding:"required"`
	Equipamento      string        `json:"equipamento"`
	Nivel            string        `json:"nivel"`
	Midia            *domain.Midia `json:"midia"`
	Instrucoes       []string      `json:"instrucoes"`
	Variacoes        []string      `json:"variacoes"`
	Tags             []string      `json:"tags"`
}

// --- Handler Methods ---

// CreateExercise handles POST /exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise := &domain.Exercise{
		ID:               req.ID,
		Nome:             req.Nome,
		GruposMusculares: req.GruposMusculares,
		Equipamento:      req.Equipamento,
		Nivel:            domain.Level(req.Nivel),
		Midia:            req.Midia,
		Instrucoes:       req.Instrucoes,
		Variacoes:        req.Variacoes,
		Tags:             req.Tags,
	}

	created, err := h.catalogService.CreateExercise(c.Request.Context(), exercise)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateExercise):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListExercises handles GET /exercises. The optional muscle, equipment,
// level and q query parameters filter the catalog; without them the
// full catalog is returned.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := service.ExerciseFilter{
		Muscle:    c.Query("muscle"),
		Equipment: c.Query("equipment"),
		Level:     c.Query("level"),
		Query:     c.Query("q"),
	}

	exercises, err := h.catalogService.SearchExercises(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		c.JSON(http.StatusOK, []domain.Exercise{})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise handles GET /exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.catalogService.GetExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise handles PUT /exercises/:id. The body is a partial
// record; supplied fields are shallow-merged over the stored one.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var fields repository.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.catalogService.UpdateExercise(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		return
	}
	c.JSON(http.StatusOK, updated)
}
