package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// SQLiteTimesheetRepo implements TimesheetRepo over SQLite.
type SQLiteTimesheetRepo struct {
	db db.DBTX
}

func NewSQLiteTimesheetRepo(dbtx db.DBTX) *SQLiteTimesheetRepo {
	return &SQLiteTimesheetRepo{db: dbtx}
}

func (r *SQLiteTimesheetRepo) Create(ctx context.Context, ts *domain.Timesheet) error {
	query := `INSERT INTO timesheets (name, docstatus, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ts.Name,
		int(ts.DocStatus),
		ts.CreatedAt.Format(time.RFC3339),
		ts.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting timesheet: %w", err)
	}
	for _, e := range ts.Entries {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO timesheet_entries (name, parent, project, task, billable, hours, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.Name, ts.Name, e.Project, e.Task, boolToInt(e.Billable), e.Hours,
			e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting timesheet entry %s: %w", e.Name, err)
		}
	}
	return nil
}

func (r *SQLiteTimesheetRepo) GetByID(ctx context.Context, name string) (*domain.Timesheet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, docstatus, created_at, updated_at FROM timesheets WHERE name = ?`, name)

	var ts domain.Timesheet
	var docstatus int
	var createdAtStr, updatedAtStr string
	err := row.Scan(&ts.Name, &docstatus, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timesheet %s not found", name)
		}
		return nil, fmt.Errorf("scanning timesheet: %w", err)
	}
	ts.DocStatus = domain.DocStatus(docstatus)
	if ts.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if ts.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	ts.Entries, err = r.listEntries(ctx,
		`SELECT name, parent, project, task, billable, hours, created_at, updated_at
		 FROM timesheet_entries WHERE parent = ? ORDER BY name`, name)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// ListEntriesByRef selects entries by an enumerated reference column.
// field must come from domain.EntryRefField; anything else is rejected.
func (r *SQLiteTimesheetRepo) ListEntriesByRef(ctx context.Context, field, value string) ([]domain.TimesheetEntry, error) {
	switch field {
	case "project", "task":
	default:
		return nil, fmt.Errorf("unsupported entry reference field %q", field)
	}
	query := `SELECT name, parent, project, task, billable, hours, created_at, updated_at
		FROM timesheet_entries WHERE ` + field + ` = ? ORDER BY name`
	return r.listEntries(ctx, query, value)
}

// SetEntryBillable writes the billable flag on a single entry. One
// independent statement per entry; callers do not wrap this in a
// transaction (see §UnitOfWork).
func (r *SQLiteTimesheetRepo) SetEntryBillable(ctx context.Context, entryName string, billable bool) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE timesheet_entries SET billable = ?, updated_at = ? WHERE name = ?`,
		boolToInt(billable), now, entryName,
	)
	if err != nil {
		return fmt.Errorf("updating entry billable: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("timesheet entry %s not found", entryName)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) SetDocStatus(ctx context.Context, name string, status domain.DocStatus) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE timesheets SET docstatus = ?, updated_at = ? WHERE name = ?`,
		int(status), now, name,
	)
	if err != nil {
		return fmt.Errorf("updating timesheet docstatus: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("timesheet %s not found", name)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) listEntries(ctx context.Context, query string, args ...any) ([]domain.TimesheetEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimesheetEntry
	for rows.Next() {
		var e domain.TimesheetEntry
		var billable int
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&e.Name, &e.Parent, &e.Project, &e.Task, &billable, &e.Hours, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning timesheet entry: %w", err)
		}
		e.Billable = intToBool(billable)
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timesheet entries: %w", err)
	}
	return entries, nil
}
