package service

import (
	"math/rand"
	"time"

	"github.com/m3tering/explorer-backend-go/internal/demo"
	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/repository"
)

// EnergyService generates the demo usage and balance views shown on meter
// pages. The underlying data is synthetic by design.
type EnergyService struct {
	blocks *repository.BlockRepository
	seed   int64
}

// NewEnergyService creates a new energy service
func NewEnergyService(blocks *repository.BlockRepository, seed int64) *EnergyService {
	return &EnergyService{blocks: blocks, seed: seed}
}

// HourlyUsage returns 24-hour usage curves, optionally narrowed to one
// meter. Activity levels are always proportional to the full block set, so
// narrowing filters the output rather than the input.
func (s *EnergyService) HourlyUsage(meterID string) ([]models.HourlyEnergyUsage, error) {
	blocks, err := s.blocks.List("")
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return []models.HourlyEnergyUsage{}, nil
	}

	usage := demo.HourlyEnergyUsage(blocks, s.rng())
	if meterID == "" {
		return usage, nil
	}

	narrowed := make([]models.HourlyEnergyUsage, 0, 24)
	for _, u := range usage {
		if u.MeterID == meterID {
			narrowed = append(narrowed, u)
		}
	}
	return narrowed, nil
}

// Stablecoins returns per-meter stablecoin balances, optionally narrowed to
// one meter.
func (s *EnergyService) Stablecoins(meterID string) (map[string][]models.StablecoinBalance, error) {
	blocks, err := s.blocks.List("")
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return map[string][]models.StablecoinBalance{}, nil
	}

	balances := demo.MeterStablecoins(blocks, demo.DefaultStablecoins, s.rng())
	if meterID == "" {
		return balances, nil
	}

	narrowed := map[string][]models.StablecoinBalance{}
	if held, ok := balances[meterID]; ok {
		narrowed[meterID] = held
	}
	return narrowed, nil
}

func (s *EnergyService) rng() *rand.Rand {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
