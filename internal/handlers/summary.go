package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

type SummaryHandler struct {
	Service *records.Service
}

func NewSummaryHandler(service *records.Service) *SummaryHandler {
	return &SummaryHandler{Service: service}
}

func (h *SummaryHandler) Get(c *gin.Context) {
	summary, err := h.Service.Summarize(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
