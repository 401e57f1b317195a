package service

import (
	"time"

	"github.com/m3tering/explorer-backend-go/internal/feed"
	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/repository"
)

// ActivityService handles business logic for the activity feed
type ActivityService struct {
	repo *repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// GetFeed loads all activity records, enriches them against now, and returns
// the entries visible under the given age-window selector.
func (s *ActivityService) GetFeed(selector string, now time.Time) ([]models.EnrichedActivity, error) {
	return s.getFeed("", selector, now)
}

// GetMeterFeed is GetFeed scoped to a single meter
func (s *ActivityService) GetMeterFeed(meterID, selector string, now time.Time) ([]models.EnrichedActivity, error) {
	return s.getFeed(meterID, selector, now)
}

func (s *ActivityService) getFeed(meterID, selector string, now time.Time) ([]models.EnrichedActivity, error) {
	records, err := s.repo.List(meterID)
	if err != nil {
		return nil, err
	}

	f := feed.Load(records, now)
	f.SetFilter(selector)
	return f.Visible(), nil
}
