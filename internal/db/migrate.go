package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions tolerate re-runs.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS parties (
		name       TEXT PRIMARY KEY,
		party_type TEXT NOT NULL
		           CHECK(party_type IN ('Customer','Supplier')),
		docstatus  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS party_licenses (
		parent       TEXT NOT NULL REFERENCES parties(name) ON DELETE CASCADE,
		idx          INTEGER NOT NULL,
		license      TEXT NOT NULL,
		is_default   INTEGER NOT NULL DEFAULT 0,
		license_type TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (parent, idx)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_party_licenses_license ON party_licenses(license)`,

	`CREATE TABLE IF NOT EXISTS compliance_info (
		name           TEXT PRIMARY KEY,
		license_number TEXT NOT NULL DEFAULT '',
		expiry_date    TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		name             TEXT PRIMARY KEY,
		project_name     TEXT NOT NULL DEFAULT '',
		project_type     TEXT NOT NULL DEFAULT '',
		project_template TEXT NOT NULL DEFAULT '',
		billable         INTEGER NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT 'open'
		                 CHECK(status IN ('open','completed','cancelled')),
		docstatus        INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_type ON projects(project_type)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_template ON projects(project_template)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		name       TEXT PRIMARY KEY,
		project    TEXT NOT NULL REFERENCES projects(name) ON DELETE CASCADE,
		subject    TEXT NOT NULL DEFAULT '',
		billable   INTEGER NOT NULL DEFAULT 0,
		status     TEXT NOT NULL DEFAULT 'open'
		           CHECK(status IN ('open','working','completed','cancelled')),
		docstatus  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project)`,

	`CREATE TABLE IF NOT EXISTS timesheets (
		name       TEXT PRIMARY KEY,
		docstatus  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS timesheet_entries (
		name       TEXT PRIMARY KEY,
		parent     TEXT NOT NULL REFERENCES timesheets(name) ON DELETE CASCADE,
		project    TEXT NOT NULL DEFAULT '',
		task       TEXT NOT NULL DEFAULT '',
		billable   INTEGER NOT NULL DEFAULT 0,
		hours      REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_parent ON timesheet_entries(parent)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_project ON timesheet_entries(project)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_task ON timesheet_entries(task)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		name         TEXT PRIMARY KEY,
		doctype      TEXT NOT NULL,
		customer     TEXT NOT NULL DEFAULT '',
		supplier     TEXT NOT NULL DEFAULT '',
		quotation_to TEXT NOT NULL DEFAULT '',
		party_name   TEXT NOT NULL DEFAULT '',
		project      TEXT NOT NULL DEFAULT '',
		docstatus    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_transactions_project ON transactions(project)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_doctype ON transactions(doctype)`,
}
