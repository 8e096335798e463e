package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo over SQLite.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

const taskColumns = `name, project, subject, billable, status, docstatus, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Project,
		t.Subject,
		boolToInt(t.Billable),
		string(t.Status),
		int(t.DocStatus),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, name string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s not found", name)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, project string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, project)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project = ?, subject = ?, billable = ?, status = ?, docstatus = ?, updated_at = ?
		WHERE name = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Project,
		t.Subject,
		boolToInt(t.Billable),
		string(t.Status),
		int(t.DocStatus),
		t.UpdatedAt.Format(time.RFC3339),
		t.Name,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var billable, docstatus int
	var statusStr, createdAtStr, updatedAtStr string

	err := scan(
		&t.Name, &t.Project, &t.Subject,
		&billable, &statusStr, &docstatus,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Billable = intToBool(billable)
	t.Status = domain.TaskStatus(statusStr)
	t.DocStatus = domain.DocStatus(docstatus)
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
