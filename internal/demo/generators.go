// Package demo generates development and demo data for the explorer: hourly
// usage curves, stablecoin balances, and a database seed that keeps empty
// dashboards populated.
package demo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/m3tering/explorer-backend-go/internal/models"
)

// DefaultStablecoins is the settlement token set shown on meter pages.
var DefaultStablecoins = []models.Stablecoin{
	{Symbol: "USDT", Network: "Polygon"},
	{Symbol: "USDC", Network: "Base"},
	{Symbol: "DAI", Network: "Ethereum"},
	{Symbol: "cUSD", Network: "Celo"},
}

// HourlyEnergyUsage fabricates a 24-hour usage curve per distinct meter in
// the block set. A meter's share of all blocks drives its base usage; each
// hour gets a uniform variation in [0.7, 1.3).
func HourlyEnergyUsage(blocks []models.SourceBlock, rng *rand.Rand) []models.HourlyEnergyUsage {
	meters := distinctMeters(blocks)
	usage := make([]models.HourlyEnergyUsage, 0, len(meters)*24)

	for _, meterID := range meters {
		meterBlocks := blocksFor(blocks, meterID)
		activityLevel := float64(len(meterBlocks)) / float64(len(blocks))
		baseUsage := 10 + activityLevel*20

		date := "2025-01-01"
		if len(meterBlocks) > 0 {
			date = meterBlocks[0].Date
		}

		for hour := 0; hour < 24; hour++ {
			label := fmt.Sprintf("%02d:00", hour)
			variation := 0.7 + rng.Float64()*0.6
			usage = append(usage, models.HourlyEnergyUsage{
				MeterID:    meterID,
				Hour:       label,
				EnergyUsed: round1(baseUsage * variation),
				Timestamp:  date + " " + label,
			})
		}
	}
	return usage
}

// MeterStablecoins fabricates USD balances for every coin on every distinct
// meter, scaled by the meter's share of block activity.
func MeterStablecoins(blocks []models.SourceBlock, coins []models.Stablecoin, rng *rand.Rand) map[string][]models.StablecoinBalance {
	balances := make(map[string][]models.StablecoinBalance)

	for _, meterID := range distinctMeters(blocks) {
		meterBlocks := blocksFor(blocks, meterID)
		activityLevel := float64(len(meterBlocks)) / float64(len(blocks))

		held := make([]models.StablecoinBalance, 0, len(coins))
		for _, coin := range coins {
			value := 200 + rng.Float64()*450*activityLevel
			held = append(held, models.StablecoinBalance{
				Symbol:  coin.Symbol,
				Network: coin.Network,
				Value:   round4(value),
			})
		}
		balances[meterID] = held
	}
	return balances
}

func distinctMeters(blocks []models.SourceBlock) []string {
	seen := make(map[string]bool, len(blocks))
	var meters []string
	for _, b := range blocks {
		if b.MeterID == "" || seen[b.MeterID] {
			continue
		}
		seen[b.MeterID] = true
		meters = append(meters, b.MeterID)
	}
	return meters
}

func blocksFor(blocks []models.SourceBlock, meterID string) []models.SourceBlock {
	var matching []models.SourceBlock
	for _, b := range blocks {
		if b.MeterID == meterID {
			matching = append(matching, b)
		}
	}
	return matching
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
