package api

import (
	"academia/workout-app/internal/domain"
	"academia/workout-app/internal/service"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// LogHandler holds the logbook service dependency.
type LogHandler struct {
	logbookService service.LogbookService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logbookService service.LogbookService) *LogHandler {
	return &LogHandler{logbookService: logbookService}
}

// CreateLogRequest defines the expected JSON for recording a completed
// workout execution.
type CreateLogRequest struct {
	WorkoutID      string                `json:"workoutId" binding:"required"`
	DataRealizada  string                `json:"dataRealizada" binding:"required"`
	SetsRealizados []domain.PerformedSet `json:"setsRealizados"`
	Observacoes    string                `json:"observacoes"`
}

// CreateLog handles POST /logs.
func (h *LogHandler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry := &domain.LogEntry{
		WorkoutID:      req.WorkoutID,
		DataRealizada:  req.DataRealizada,
		SetsRealizados: req.SetsRealizados,
		Observacoes:    req.Observacoes,
	}

	created, err := h.logbookService.RecordExecution(c.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, service.ErrLogValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to record log entry.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListLogs handles GET /logs.
func (h *LogHandler) ListLogs(c *gin.Context) {
	logs, err := h.logbookService.ListLogs(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve logs.")
		return
	}
	if logs == nil {
		c.JSON(http.StatusOK, []domain.LogEntry{})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetLog handles GET /logs/:id.
func (h *LogHandler) GetLog(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid log id.")
		return
	}

	entry, err := h.logbookService.GetLogByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			abortWithError(c, http.StatusNotFound, "Log entry not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve log entry.")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetStats handles GET /logs/stats. The optional days query parameter
// limits the aggregation window.
func (h *LogHandler) GetStats(c *gin.Context) {
	var since time.Time
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			abortWithError(c, http.StatusBadRequest, "Invalid days parameter.")
			return
		}
		since = time.Now().UTC().AddDate(0, 0, -days)
	}

	stats, err := h.logbookService.Stats(c.Request.Context(), since)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
