package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/m3tering/explorer-backend-go/internal/models"
)

// BlockRepository handles database operations for source blocks
type BlockRepository struct {
	db *sql.DB
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *sql.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// List returns blocks, optionally scoped to one meter, in date order.
// Dates are stored DD/MM/YYYY; ordering reverses the segments so the sort
// is chronological.
func (r *BlockRepository) List(meterID string) ([]models.SourceBlock, error) {
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

	query := `SELECT id, meter_id, date FROM blocks` + whereClause +
		` ORDER BY substr(date, 7, 4), substr(date, 4, 2), substr(date, 1, 2), id`
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.SourceBlock
	for rows.Next() {
		var b models.SourceBlock
		if err := rows.Scan(&b.ID, &b.MeterID, &b.Date); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, b)
	}

	return blocks, rows.Err()
}

// Insert stores a block record
func (r *BlockRepository) Insert(tx *sql.Tx, b models.SourceBlock) error {
	_, err := tx.Exec("INSERT INTO blocks (meter_id, date) VALUES (?, ?)", b.MeterID, b.Date)
	if err != nil {
		return fmt.Errorf("failed to insert block for %s: %w", b.MeterID, err)
	}
	return nil
}

// Count returns the number of stored blocks
func (r *BlockRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM blocks").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count blocks: %w", err)
	}
	return count, nil
}
