package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/m3tering/explorer-backend-go/internal/database"
	"github.com/m3tering/explorer-backend-go/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.NewMigrationManager(db).Run(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func insertMeter(t *testing.T, db *sql.DB, m models.Meter) {
	t.Helper()

	repo := NewMeterRepository(db)
	if err := database.Transaction(db, func(tx *sql.Tx) error {
		return repo.Insert(tx, m)
	}); err != nil {
		t.Fatalf("failed to insert meter: %v", err)
	}
}

func TestMeterRepository(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	repo := NewMeterRepository(db)

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh store has %d meters, want 0", count)
	}

	insertMeter(t, db, models.Meter{ID: "M3-b", Lat: 6.52, Lng: 3.38})
	insertMeter(t, db, models.Meter{ID: "M3-a", Lat: 6.53, Lng: 3.37})

	meters, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(meters) != 2 {
		t.Fatalf("got %d meters, want 2", len(meters))
	}
	if meters[0].ID != "M3-a" || meters[1].ID != "M3-b" {
		t.Errorf("meters not ordered by id: %s, %s", meters[0].ID, meters[1].ID)
	}

	got, err := repo.GetByID("M3-a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Lat != 6.53 || got.Lng != 3.37 {
		t.Errorf("coordinates round-trip failed: %+v", got)
	}

	if _, err := repo.GetByID("missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID(missing) error = %v, want sql.ErrNoRows", err)
	}
}

func TestBlockRepositoryChronologicalOrder(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	insertMeter(t, db, models.Meter{ID: "M3-a", Lat: 6.52, Lng: 3.38})

	repo := NewBlockRepository(db)
	// insert out of order across month and year boundaries
	dates := []string{"05/03/2025", "28/02/2025", "31/12/2024", "01/03/2025"}
	if err := database.Transaction(db, func(tx *sql.Tx) error {
		for _, d := range dates {
			if err := repo.Insert(tx, models.SourceBlock{MeterID: "M3-a", Date: d}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		t.Fatalf("insert blocks: %v", err)
	}

	blocks, err := repo.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	wantOrder := []string{"31/12/2024", "28/02/2025", "01/03/2025", "05/03/2025"}
	if len(blocks) != len(wantOrder) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantOrder))
	}
	for i, d := range wantOrder {
		if blocks[i].Date != d {
			t.Errorf("position %d: got %s, want %s", i, blocks[i].Date, d)
		}
	}
}

func TestBlockRepositoryMeterScope(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	insertMeter(t, db, models.Meter{ID: "M3-a", Lat: 6.52, Lng: 3.38})
	insertMeter(t, db, models.Meter{ID: "M3-b", Lat: 6.53, Lng: 3.37})

	repo := NewBlockRepository(db)
	if err := database.Transaction(db, func(tx *sql.Tx) error {
		if err := repo.Insert(tx, models.SourceBlock{MeterID: "M3-a", Date: "10/07/2025"}); err != nil {
			return err
		}
		return repo.Insert(tx, models.SourceBlock{MeterID: "M3-b", Date: "10/07/2025"})
	}); err != nil {
		t.Fatalf("insert blocks: %v", err)
	}

	scoped, err := repo.List("M3-a")
	if err != nil {
		t.Fatalf("List scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].MeterID != "M3-a" {
		t.Errorf("scoped list = %+v, want only M3-a", scoped)
	}

	all, err := repo.List("")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d blocks, want 2", len(all))
	}
}

func TestActivityRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	insertMeter(t, db, models.Meter{ID: "M3-a", Lat: 6.52, Lng: 3.38})

	repo := NewActivityRepository(db)
	rec := models.ActivityRecord{
		Time:      "10:00 PM",
		Date:      "2025-07-10",
		Energy:    150,
		Signature: "0x386888AB83c7f2ac174e3eFfB75d39578733E0e6",
		Value:     0.5,
		Validity:  models.ValidityInvalid,
		MeterID:   "M3-a",
	}
	orphan := models.ActivityRecord{
		Time:      "04:00 AM",
		Date:      "2025-07-10",
		Energy:    150,
		Signature: "0x5879aB83c7f2ac174e3eFfB75d39578733E0e7f",
		Value:     0.5,
		Validity:  models.ValidityValid,
	}

	if err := database.Transaction(db, func(tx *sql.Tx) error {
		if err := repo.Insert(tx, rec); err != nil {
			return err
		}
		return repo.Insert(tx, orphan)
	}); err != nil {
		t.Fatalf("insert activities: %v", err)
	}

	all, err := repo.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d activities, want 2", len(all))
	}

	got := all[0]
	if got.Time != rec.Time || got.Date != rec.Date || got.Signature != rec.Signature ||
		got.Validity != rec.Validity || got.Energy != rec.Energy || got.Value != rec.Value {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	scoped, err := repo.List("M3-a")
	if err != nil {
		t.Fatalf("List scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].MeterID != "M3-a" {
		t.Errorf("scoped list = %+v, want only the metered record", scoped)
	}
}
