package api

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"academia/workout-app/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkoutRequest defines the expected JSON for creating a planned
// workout. Blocos may be empty; order is execution order.
type CreateWorkoutRequest struct {
	ID            string                `json:"id"`
	Nome          string                `json:"nome"`
	DataPlanejada string                `json:"dataPlanejada"`
	Blocos        []domain.WorkoutBlock `json:"blocos"`
	Notas         string                `json:"notas"`
}

// CreateWorkout handles POST /workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout := &domain.Workout{
		ID:            req.ID,
		Nome:          req.Nome,
		DataPlanejada: req.DataPlanejada,
		Blocos:        req.Blocos,
		Notas:         req.Notas,
	}

	created, err := h.workoutService.CreateWorkout(c.Request.Context(), workout)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateWorkout) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListWorkouts handles GET /workouts.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	if workouts == nil {
		c.JSON(http.StatusOK, []domain.Workout{})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout handles GET /workouts/:id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkoutByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout handles PUT /workouts/:id with a partial record body.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var fields repository.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.workoutService.UpdateWorkout(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, updated)
}
