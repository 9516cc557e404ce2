package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medtrack/clinic-api/internal/handler"
	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/service/history"
)

type Handler struct {
	service *history.Service
}

func NewHandler(service *history.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/medical-history")
	{
		records.POST("", h.Record)
		records.GET("/:id", h.GetRecord)
	}
	r.GET("/patients/:id/medical-history", h.ListByPatient)
}

func (h *Handler) Record(c *gin.Context) {
	var req model.RecordHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.Record(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) GetRecord(c *gin.Context) {
	id, ok := handler.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	record, err := h.service.GetRecord(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) ListByPatient(c *gin.Context) {
	patientID, ok := handler.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	records, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}
