package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// RegisterHealthRoutes registers health check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handleHealth)
}

// RegisterGenerateRoutes registers the description generation endpoint.
func RegisterGenerateRoutes(r *gin.Engine, h *Handler) {
	r.POST("/generate", h.handleGenerate)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// handleGenerate accepts a VideoRequest and answers with the generated description.
func (h *Handler) handleGenerate(c *gin.Context) {
	var req models.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	desc, err := h.pipeline.Generate(c.Request.Context(), req)
	if err != nil {
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, desc)
}

func errorResponse(err error) (int, gin.H) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "field": verr.Field}
	case errors.Is(err, models.ErrGeneration):
		return http.StatusBadGateway, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	}
}
