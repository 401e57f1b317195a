package service

import (
	"sort"

	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/repository"
	"github.com/m3tering/explorer-backend-go/internal/spatial"
)

// MeterService handles business logic for the meter registry
type MeterService struct {
	repo *repository.MeterRepository
}

// NewMeterService creates a new meter service
func NewMeterService(repo *repository.MeterRepository) *MeterService {
	return &MeterService{repo: repo}
}

// List returns all registered meters
func (s *MeterService) List() ([]models.Meter, error) {
	return s.repo.List()
}

// GetByID returns a single meter
func (s *MeterService) GetByID(id string) (*models.Meter, error) {
	return s.repo.GetByID(id)
}

// Nearby returns the meters within radius meters of a point, closest first
func (s *MeterService) Nearby(filter models.NearbyFilter) ([]models.NearbyMeter, error) {
	meters, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyMeter, 0, len(meters))
	for _, m := range meters {
		d := spatial.Distance(filter.Lat, filter.Lng, m.Lat, m.Lng)
		if d <= filter.Radius {
			nearby = append(nearby, models.NearbyMeter{Meter: m, DistanceMeters: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	return nearby, nil
}
