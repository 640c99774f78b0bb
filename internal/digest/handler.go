package digest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doghub/internal/notifyhub"
)

type Handler struct {
	Agg *Aggregator
	Hub *notifyhub.Hub
}

func NewHandler(agg *Aggregator, hub *notifyhub.Hub) *Handler {
	return &Handler{Agg: agg, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.get)         // GET /digest
	rg.GET("/keys", h.keys)   // GET /digest/keys
}

// get runs a fresh aggregation pass and returns the full digest. There is no
// caching: every call hits the upstream APIs.
func (h *Handler) get(c *gin.Context) {
	snap := h.Agg.Gather(c.Request.Context())
	h.broadcast(snap)

	c.JSON(http.StatusOK, gin.H{
		"run_id":     snap.RunID,
		"fetched_at": snap.FetchedAt,
		"keys":       snap.Digest.Keys(),
		"digest":     snap.Digest,
	})
}

func (h *Handler) keys(c *gin.Context) {
	snap := h.Agg.Gather(c.Request.Context())
	h.broadcast(snap)

	c.JSON(http.StatusOK, gin.H{
		"run_id": snap.RunID,
		"keys":   snap.Digest.Keys(),
	})
}

func (h *Handler) broadcast(snap Snapshot) {
	if h.Hub == nil {
		return
	}
	h.Hub.BroadcastJSON(notifyhub.RefreshEvent{
		Type:  "digest.refresh",
		RunID: snap.RunID,
		Keys:  snap.Digest.Keys(),
		At:    snap.FetchedAt,
	})
}
