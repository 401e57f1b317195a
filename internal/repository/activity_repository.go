package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/m3tering/explorer-backend-go/internal/models"
)

// ActivityRepository handles database operations for activity records
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns activity records, optionally scoped to one meter. Ordering is
// left to the feed: it re-sorts by absolute instant after enrichment.
func (r *ActivityRepository) List(meterID string) ([]models.ActivityRecord, error) {
	var conditions []string
	var args []interface{}

	if meterID != "" {
		conditions = append(conditions, "meter_id = ?")
		args = append(args, meterID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, time, date, energy, signature, value, validity, COALESCE(meter_id, '') FROM activities` + whereClause
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var rec models.ActivityRecord
		if err := rows.Scan(&rec.ID, &rec.Time, &rec.Date, &rec.Energy, &rec.Signature, &rec.Value, &rec.Validity, &rec.MeterID); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Insert stores an activity record
func (r *ActivityRepository) Insert(tx *sql.Tx, rec models.ActivityRecord) error {
	_, err := tx.Exec(
		"INSERT INTO activities (time, date, energy, signature, value, validity, meter_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rec.Time, rec.Date, rec.Energy, rec.Signature, rec.Value, rec.Validity, nullable(rec.MeterID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

// Count returns the number of stored activity records
func (r *ActivityRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
