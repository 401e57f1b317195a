package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/service"
	"github.com/m3tering/explorer-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for calendar heatmap data
type HeatmapHandler struct {
	heatmapService *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(heatmapService *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{
		heatmapService: heatmapService,
	}
}

// GetHeatmap handles GET /api/v1/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid heatmap parameters")
		return
	}

	var result *models.HeatmapResponse
	var err error

	switch filter.Mode {
	case "", "rolling":
		result, err = h.heatmapService.Rolling(filter.Days, filter.MeterID)
	case "year":
		result, err = h.heatmapService.Yearly(filter.Year, filter.MeterID)
	default:
		response.BadRequest(c, "Unknown heatmap mode: "+filter.Mode)
		return
	}

	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
