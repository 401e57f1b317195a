package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/service"
	"github.com/m3tering/explorer-backend-go/pkg/response"
)

const defaultNearbyRadiusMeters = 5000.0

// MeterHandler handles HTTP requests for the meter registry
type MeterHandler struct {
	meterService *service.MeterService
}

// NewMeterHandler creates a new meter handler
func NewMeterHandler(meterService *service.MeterService) *MeterHandler {
	return &MeterHandler{
		meterService: meterService,
	}
}

// GetMeters handles GET /api/v1/meters
func (h *MeterHandler) GetMeters(c *gin.Context) {
	meters, err := h.meterService.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, meters)
}

// GetMeter handles GET /api/v1/meters/:id
func (h *MeterHandler) GetMeter(c *gin.Context) {
	meter, err := h.meterService.GetByID(c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		response.NotFound(c, "Meter not found")
		return
	}
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, meter)
}

// GetNearbyMeters handles GET /api/v1/meters/nearby
func (h *MeterHandler) GetNearbyMeters(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lng parameter")
		return
	}

	radius := defaultNearbyRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			response.BadRequest(c, "Invalid radius parameter")
			return
		}
	}

	nearby, err := h.meterService.Nearby(models.NearbyFilter{Lat: lat, Lng: lng, Radius: radius})
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, nearby)
}
