package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over SQLite.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

const projectColumns = `name, project_name, project_type, project_template, billable, status, docstatus, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.ProjectName,
		p.ProjectType,
		p.ProjectTemplate,
		boolToInt(p.Billable),
		string(p.Status),
		int(p.DocStatus),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, name string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)
	p, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s not found", name)
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name`
	return r.queryProjects(ctx, query)
}

// ListByRef selects projects by an enumerated reference column. field must
// come from domain.ProjectRefField; anything else is rejected.
func (r *SQLiteProjectRepo) ListByRef(ctx context.Context, field, value string) ([]*domain.Project, error) {
	switch field {
	case "project_type", "project_template":
	default:
		return nil, fmt.Errorf("unsupported project reference field %q", field)
	}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE ` + field + ` = ? ORDER BY name`
	return r.queryProjects(ctx, query, value)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET project_name = ?, project_type = ?, project_template = ?,
		billable = ?, status = ?, docstatus = ?, updated_at = ? WHERE name = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.ProjectName,
		p.ProjectType,
		p.ProjectTemplate,
		boolToInt(p.Billable),
		string(p.Status),
		int(p.DocStatus),
		p.UpdatedAt.Format(time.RFC3339),
		p.Name,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var billable, docstatus int
	var statusStr, createdAtStr, updatedAtStr string

	err := scan(
		&p.Name, &p.ProjectName, &p.ProjectType, &p.ProjectTemplate,
		&billable, &statusStr, &docstatus,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Billable = intToBool(billable)
	p.Status = domain.ProjectStatus(statusStr)
	p.DocStatus = domain.DocStatus(docstatus)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
