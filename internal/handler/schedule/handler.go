package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medtrack/clinic-api/internal/handler"
	"github.com/medtrack/clinic-api/internal/service/schedule"
)

type Handler struct {
	service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/schedule/upcoming", h.Upcoming)
	r.GET("/patients/:id/age", h.PatientAge)
}

// Upcoming serves the derived view. only_scheduled=true narrows to
// status "scheduled"; the default matches the unfiltered view.
func (h *Handler) Upcoming(c *gin.Context) {
	onlyScheduled := c.Query("only_scheduled") == "true"

	rows, err := h.service.Upcoming(c.Request.Context(), onlyScheduled)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(rows))
}

func (h *Handler) PatientAge(c *gin.Context) {
	id, ok := handler.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	age, err := h.service.PatientAge(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	// unknown patient is a null result, not an error
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"age": age}))
}
