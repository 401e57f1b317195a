package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the versioned schema, applied in order on startup.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_meters",
		SQL: `
			CREATE TABLE IF NOT EXISTS meters (
				id TEXT PRIMARY KEY,
				lat REAL NOT NULL,
				lng REAL NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_blocks",
		SQL: `
			CREATE TABLE IF NOT EXISTS blocks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				meter_id TEXT NOT NULL REFERENCES meters(id),
				date TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_blocks_meter ON blocks(meter_id);
			CREATE INDEX IF NOT EXISTS idx_blocks_date ON blocks(date)
		`,
	},
	{
		Version: 3,
		Name:    "create_activities",
		SQL: `
			CREATE TABLE IF NOT EXISTS activities (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				time TEXT NOT NULL,
				date TEXT NOT NULL,
				energy REAL NOT NULL,
				signature TEXT NOT NULL,
				value REAL NOT NULL,
				validity TEXT NOT NULL DEFAULT 'Valid',
				meter_id TEXT REFERENCES meters(id)
			);
			CREATE INDEX IF NOT EXISTS idx_activities_meter ON activities(meter_id);
			CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date)
		`,
	},
}

// MigrationManager applies the in-code migration set to a database
type MigrationManager struct {
	db *sql.DB
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// InitMigrationsTable creates the migrations tracking table
func (m *MigrationManager) InitMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns the set of applied migration versions
func (m *MigrationManager) GetAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

// Run applies all pending migrations in version order
func (m *MigrationManager) Run() error {
	if err := m.InitMigrationsTable(); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, mig := range migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, mig := range pending {
		tx, err := m.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", mig.Version, err)
		}

		if _, err := tx.Exec(mig.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", mig.Version, mig.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", mig.Version, mig.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", mig.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", mig.Version, err)
		}

		log.Printf("Applied migration %d: %s", mig.Version, mig.Name)
	}

	return nil
}
