package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations and seeds the reference cost tables.
// Statements are idempotent; the whole list re-runs on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id                     TEXT PRIMARY KEY,
		user_id                INTEGER NOT NULL,
		organization_name      TEXT NOT NULL DEFAULT '',
		employee_count         INTEGER NOT NULL,
		hr_specialist_count    INTEGER NOT NULL,
		license_tier           TEXT NOT NULL DEFAULT 'standard'
		                       CHECK(license_tier IN ('lite','standard','enterprise')),
		docs_per_employee      REAL NOT NULL,
		pages_per_document     REAL NOT NULL,
		turnover_pct           REAL NOT NULL,
		average_salary         REAL NOT NULL,
		courier_cost           REAL NOT NULL,
		hr_delivery_pct        REAL NOT NULL DEFAULT 0,
		total_paper            REAL NOT NULL,
		total_logistics        REAL NOT NULL,
		total_operations       REAL NOT NULL,
		total_license          REAL NOT NULL,
		created_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS paper_costs (
		id            TEXT PRIMARY KEY,
		page_cost     REAL NOT NULL,
		printing_cost REAL NOT NULL,
		storage_cost  REAL NOT NULL,
		rent_cost     REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS license_costs (
		id                      TEXT PRIMARY KEY,
		main_fee                REAL NOT NULL,
		hr_fee                  REAL NOT NULL,
		employee_fee_lite       REAL NOT NULL,
		employee_fee_standard   REAL NOT NULL,
		employee_fee_enterprise REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS typical_operations (
		id            TEXT PRIMARY KEY,
		printing_min  REAL NOT NULL,
		signing_min   REAL NOT NULL,
		archiving_min REAL NOT NULL
	)`,

	// Reference rows are seeded once; later edits via "rates edit" survive
	// re-runs because of INSERT OR IGNORE.
	`INSERT OR IGNORE INTO paper_costs (id, page_cost, printing_cost, storage_cost, rent_cost)
		VALUES ('default', 1.2, 2.5, 1.1, 1.7)`,

	`INSERT OR IGNORE INTO license_costs (id, main_fee, hr_fee, employee_fee_lite, employee_fee_standard, employee_fee_enterprise)
		VALUES ('default', 50000, 10000, 500, 700, 600)`,

	`INSERT OR IGNORE INTO typical_operations (id, printing_min, signing_min, archiving_min)
		VALUES ('default', 2, 5, 3)`,
}
