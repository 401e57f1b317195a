package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m3tering/explorer-backend-go/internal/feed"
	"github.com/m3tering/explorer-backend-go/internal/service"
	"github.com/m3tering/explorer-backend-go/pkg/response"
)

// ActivityHandler handles HTTP requests for the activity feed
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetActivities handles GET /api/v1/activities
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	selector := c.DefaultQuery("filter", feed.FilterAll)

	activities, err := h.activityService.GetFeed(selector, time.Now())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, activities)
}

// GetMeterActivities handles GET /api/v1/meters/:id/activities
func (h *ActivityHandler) GetMeterActivities(c *gin.Context) {
	meterID := c.Param("id")
	if meterID == "" {
		response.BadRequest(c, "Missing meter id")
		return
	}
	selector := c.DefaultQuery("filter", feed.FilterAll)

	activities, err := h.activityService.GetMeterFeed(meterID, selector, time.Now())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, activities)
}
