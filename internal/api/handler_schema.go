package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-cancellation-backend/internal/encode"
	"hotel-cancellation-backend/internal/model"
)

// SchemaResponse describes the form inputs and the feature columns they feed.
type SchemaResponse struct {
	Numeric  []model.NumericField `json:"numeric"`
	Choices  []model.ChoiceField  `json:"choices"`
	Features []string             `json:"features"`
}

// GetSchema handles GET /api/schema.
func GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, SchemaResponse{
		Numeric:  model.NumericFields(),
		Choices:  model.ChoiceFields(),
		Features: encode.ColumnNames(),
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"model":    h.modelPath,
		"features": encode.NumColumns,
	})
}
