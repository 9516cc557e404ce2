package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medtrack/clinic-api/internal/handler"
)

// Pinger is the slice of the database handle the readiness probe needs.
// *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{
		db: db,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.Liveness)
		health.GET("/ready", h.Readiness)
	}
}

// Liveness reports process health only; it never touches the store.
func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"status": "up"}))
}

// Readiness verifies the store is reachable before traffic is routed
// here. The ping observes the request deadline.
func (h *Handler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, handler.NewErrorResponse("database unreachable"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"status": "up"}))
}
