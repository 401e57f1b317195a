package demo

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/m3tering/explorer-backend-go/internal/database"
	"github.com/m3tering/explorer-backend-go/internal/models"
	"github.com/m3tering/explorer-backend-go/internal/repository"
)

// Default map center: Lagos, the pilot deployment area.
const (
	centerLat = 6.5244
	centerLng = 3.3792
)

const (
	seedMeters     = 4
	seedWindowDays = 90
	seedActivities = 40
)

// Seeder populates an empty store with plausible demo data so the dashboard
// has something to render.
type Seeder struct {
	db         *sql.DB
	meters     *repository.MeterRepository
	blocks     *repository.BlockRepository
	activities *repository.ActivityRepository
	rng        *rand.Rand
}

// NewSeeder creates a seeder over the given connection
func NewSeeder(db *sql.DB, rng *rand.Rand) *Seeder {
	return &Seeder{
		db:         db,
		meters:     repository.NewMeterRepository(db),
		blocks:     repository.NewBlockRepository(db),
		activities: repository.NewActivityRepository(db),
		rng:        rng,
	}
}

// Run seeds meters, blocks over the recent window, and an activity batch.
// It is a no-op when meters already exist.
func (s *Seeder) Run(now time.Time) error {
	count, err := s.meters.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return database.Transaction(s.db, func(tx *sql.Tx) error {
		meterIDs := make([]string, 0, seedMeters)
		for i := 0; i < seedMeters; i++ {
			m := models.Meter{
				ID:  "M3-" + uuid.NewString()[:8],
				Lat: centerLat + (s.rng.Float64()-0.5)*0.1,
				Lng: centerLng + (s.rng.Float64()-0.5)*0.1,
			}
			if err := s.meters.Insert(tx, m); err != nil {
				return err
			}
			meterIDs = append(meterIDs, m.ID)
		}

		// Busier meters earlier in the list, so heatmaps show contrast.
		for i, meterID := range meterIDs {
			density := 0.6 - 0.12*float64(i)
			for d := 0; d < seedWindowDays; d++ {
				if s.rng.Float64() > density {
					continue
				}
				day := now.AddDate(0, 0, -d)
				block := models.SourceBlock{
					MeterID: meterID,
					Date:    day.Format("02/01/2006"),
				}
				if err := s.blocks.Insert(tx, block); err != nil {
					return err
				}
			}
		}

		for i := 0; i < seedActivities; i++ {
			day := now.AddDate(0, 0, -s.rng.Intn(10))
			rec := models.ActivityRecord{
				Time:      s.clock12(),
				Date:      day.Format("2006-01-02"),
				Energy:    float64(120 + s.rng.Intn(140)),
				Signature: s.hexSignature(),
				Value:     0.4 + s.rng.Float64()*0.55,
				Validity:  models.ValidityValid,
				MeterID:   meterIDs[s.rng.Intn(len(meterIDs))],
			}
			if s.rng.Intn(3) == 0 {
				rec.Validity = models.ValidityInvalid
			}
			if err := s.activities.Insert(tx, rec); err != nil {
				return err
			}
		}

		return nil
	})
}

// clock12 renders a random time of day in the upstream 12-hour format
func (s *Seeder) clock12() string {
	hour := s.rng.Intn(24)
	minute := s.rng.Intn(12) * 5

	marker := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		marker = "PM"
	case hour > 12:
		display = hour - 12
		marker = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", display, minute, marker)
}

// hexSignature fabricates an address-like signature string
func (s *Seeder) hexSignature() string {
	buf := make([]byte, 20)
	s.rng.Read(buf)
	return fmt.Sprintf("0x%x", buf)
}
