package api

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/repository"
	"academia/workout-app/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest defines the expected JSON for creating a local
// profile.
type CreateUserRequest struct {
	ID           string             `json:"id"`
	Perfil       string             `json:"perfil"`
	Preferencias map[string]any     `json:"preferencias"`
	Fisiologia   *domain.Fisiologia `json:"fisiologia"`
	PRs          map[string]float64 `json:"prs"`
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user := &domain.User{
		ID:           req.ID,
		Perfil:       domain.Role(req.Perfil),
		Preferencias: req.Preferencias,
		Fisiologia:   req.Fisiologia,
		PRs:          req.PRs,
	}

	created, err := h.userService.CreateUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users.")
		return
	}
	if users == nil {
		c.JSON(http.StatusOK, []domain.User{})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id with a partial record body.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var fields repository.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}
	c.JSON(http.StatusOK, updated)
}
