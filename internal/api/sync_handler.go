package api

import (
	"academia/workout-app/internal/offline"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the connectivity hooks and a read-only view of
// the pending queue. The hooks are the event source for the monitor in
// a headless deployment: whatever integration detects connectivity
// (a platform agent, a reverse proxy health probe) posts transitions
// here.
type SyncHandler struct {
	queue   *offline.Queue
	monitor *offline.Monitor
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(queue *offline.Queue, monitor *offline.Monitor) *SyncHandler {
	return &SyncHandler{queue: queue, monitor: monitor}
}

// SetOnline handles POST /sync/online.
func (h *SyncHandler) SetOnline(c *gin.Context) {
	h.monitor.Set(true)
	c.JSON(http.StatusOK, gin.H{"online": true})
}

// SetOffline handles POST /sync/offline.
func (h *SyncHandler) SetOffline(c *gin.Context) {
	h.monitor.Set(false)
	c.JSON(http.StatusOK, gin.H{"online": false})
}

// Status handles GET /sync/status.
func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"online":  h.monitor.Online(),
		"pending": h.queue.Len(),
	})
}

// Queue handles GET /sync/queue: the pending entries in enqueue order.
func (h *SyncHandler) Queue(c *gin.Context) {
	entries := h.queue.Entries()
	if entries == nil {
		entries = []offline.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}
