package repository

import (
	"database/sql"
	"fmt"

	"github.com/m3tering/explorer-backend-go/internal/models"
)

// MeterRepository handles database operations for meters
type MeterRepository struct {
	db *sql.DB
}

// NewMeterRepository creates a new meter repository
func NewMeterRepository(db *sql.DB) *MeterRepository {
	return &MeterRepository{db: db}
}

// List returns all registered meters ordered by id
func (r *MeterRepository) List() ([]models.Meter, error) {
	rows, err := r.db.Query("SELECT id, lat, lng, created_at FROM meters ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query meters: %w", err)
	}
	defer rows.Close()

	var meters []models.Meter
	for rows.Next() {
		var m models.Meter
		if err := rows.Scan(&m.ID, &m.Lat, &m.Lng, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meter: %w", err)
		}
		meters = append(meters, m)
	}

	return meters, rows.Err()
}

// GetByID returns a single meter, or sql.ErrNoRows when it does not exist
func (r *MeterRepository) GetByID(id string) (*models.Meter, error) {
	var m models.Meter
	err := r.db.QueryRow("SELECT id, lat, lng, created_at FROM meters WHERE id = ?", id).
		Scan(&m.ID, &m.Lat, &m.Lng, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Insert registers a new meter
func (r *MeterRepository) Insert(tx *sql.Tx, m models.Meter) error {
	_, err := tx.Exec("INSERT INTO meters (id, lat, lng) VALUES (?, ?, ?)", m.ID, m.Lat, m.Lng)
	if err != nil {
		return fmt.Errorf("failed to insert meter %s: %w", m.ID, err)
	}
	return nil
}

// Count returns the number of registered meters
func (r *MeterRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM meters").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count meters: %w", err)
	}
	return count, nil
}
