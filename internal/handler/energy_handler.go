package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/m3tering/explorer-backend-go/internal/service"
	"github.com/m3tering/explorer-backend-go/pkg/response"
)

// EnergyHandler handles HTTP requests for generated usage and balance views
type EnergyHandler struct {
	energyService *service.EnergyService
}

// NewEnergyHandler creates a new energy handler
func NewEnergyHandler(energyService *service.EnergyService) *EnergyHandler {
	return &EnergyHandler{
		energyService: energyService,
	}
}

// GetHourlyUsage handles GET /api/v1/energy/hourly
func (h *EnergyHandler) GetHourlyUsage(c *gin.Context) {
	usage, err := h.energyService.HourlyUsage(c.Query("meterId"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, usage)
}

// GetStablecoins handles GET /api/v1/stablecoins
func (h *EnergyHandler) GetStablecoins(c *gin.Context) {
	balances, err := h.energyService.Stablecoins(c.Query("meterId"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, balances)
}
