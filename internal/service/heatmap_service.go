package service

import (
	"math/rand"
	"time"

	"github.com/m3tering/explorer-backend-go/internal/heatmap"
	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/repository"
	"github.com/m3tering/explorer-backend-go/internal/stats"
)

// HeatmapService handles business logic for calendar heatmap generation
type HeatmapService struct {
	blocks *repository.BlockRepository
	seed   int64 // 0 = fresh randomness per call
}

// NewHeatmapService creates a new heatmap service. A non-zero seed makes
// year-mode gap fill reproducible across calls.
func NewHeatmapService(blocks *repository.BlockRepository, seed int64) *HeatmapService {
	return &HeatmapService{blocks: blocks, seed: seed}
}

// Rolling generates the rolling-window heatmap ending today
func (s *HeatmapService) Rolling(days int, meterID string) (*models.HeatmapResponse, error) {
	if days <= 0 {
		days = heatmap.DefaultWindowDays
	}

	blocks, err := s.blocks.List("")
	if err != nil {
		return nil, err
	}

	buckets := heatmap.LastNDays(blocks, days, meterID, time.Now())
	return summarize(buckets, "rolling"), nil
}

// Yearly generates the full-calendar-year heatmap
func (s *HeatmapService) Yearly(year int, meterID string) (*models.HeatmapResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	blocks, err := s.blocks.List("")
	if err != nil {
		return nil, err
	}

	buckets := heatmap.ByYear(blocks, year, meterID, s.rng())
	return summarize(buckets, "year"), nil
}

// rng builds a fresh generator per call: *rand.Rand is not safe for
// concurrent use across handler goroutines.
func (s *HeatmapService) rng() *rand.Rand {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func summarize(buckets []models.DayBucket, mode string) *models.HeatmapResponse {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = float64(b.Value)
	}

	return &models.HeatmapResponse{
		Days:      buckets,
		Count:     len(buckets),
		MaxValue:  int(stats.Max(values)),
		MinValue:  int(stats.Min(values)),
		MeanValue: stats.Mean(values),
		P95Value:  stats.Percentile(values, 95),
		Mode:      mode,
	}
}
