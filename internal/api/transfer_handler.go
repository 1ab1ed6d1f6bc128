package api

import (
	"academia/workout-app/internal/config"
	"academia/workout-app/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TransferHandler holds the export/import service dependency.
type TransferHandler struct {
	transferService service.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// Export handles GET /export?scope=all|catalog|workouts|logs. The
// response carries the download filename convention so a browser saves
// it as <app-name>-export-<YYYY-MM-DD>.json.
func (h *TransferHandler) Export(c *gin.Context) {
	scope := service.Scope(c.DefaultQuery("scope", string(service.ScopeAll)))

	snapshot, err := h.transferService.Export(c.Request.Context(), scope)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScope) {
			abortWithError(c, http.StatusBadRequest, "Invalid scope.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to export data.")
		return
	}

	filename := service.ExportFilename(config.AppName, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, snapshot)
}

// Import handles POST /import with a snapshot JSON body. The result is
// always returned to the caller: Success plus an itemized error list.
// Record-level problems never abort the rest of the batch, so the
// response status is 200 even when some records were rejected.
func (h *TransferHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body.")
		return
	}

	result := h.transferService.Import(c.Request.Context(), raw)
	c.JSON(http.StatusOK, result)
}
