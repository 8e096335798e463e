package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	tables := []string{
		"parties", "party_licenses", "compliance_info",
		"projects", "tasks", "timesheets", "timesheet_entries",
		"transactions",
	}
	for _, table := range tables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Running migrations again over an up-to-date schema must not fail.
	require.NoError(t, Migrate(database))
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO tasks (name, project, created_at, updated_at)
		 VALUES ('TASK-0001', 'MISSING-PROJECT', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
	)
	assert.Error(t, err, "task referencing a missing project should be rejected")
}
