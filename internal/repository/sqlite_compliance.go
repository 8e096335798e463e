package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// SQLiteComplianceInfoRepo implements ComplianceInfoRepo over SQLite.
type SQLiteComplianceInfoRepo struct {
	db db.DBTX
}

func NewSQLiteComplianceInfoRepo(dbtx db.DBTX) *SQLiteComplianceInfoRepo {
	return &SQLiteComplianceInfoRepo{db: dbtx}
}

func (r *SQLiteComplianceInfoRepo) Create(ctx context.Context, c *domain.ComplianceInfo) error {
	query := `INSERT INTO compliance_info (name, license_number, expiry_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.LicenseNumber,
		nullableTimeToString(c.ExpiryDate, dateLayout),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting compliance info: %w", err)
	}
	return nil
}

func (r *SQLiteComplianceInfoRepo) GetByID(ctx context.Context, name string) (*domain.ComplianceInfo, error) {
	query := `SELECT name, license_number, expiry_date, created_at, updated_at
		FROM compliance_info WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)

	var c domain.ComplianceInfo
	var expiryStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.Name, &c.LicenseNumber, &expiryStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("compliance info %s not found", name)
		}
		return nil, fmt.Errorf("scanning compliance info: %w", err)
	}
	c.ExpiryDate = parseNullableTime(expiryStr, dateLayout)
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func (r *SQLiteComplianceInfoRepo) Update(ctx context.Context, c *domain.ComplianceInfo) error {
	query := `UPDATE compliance_info SET license_number = ?, expiry_date = ?, updated_at = ?
		WHERE name = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.LicenseNumber,
		nullableTimeToString(c.ExpiryDate, dateLayout),
		c.UpdatedAt.Format(time.RFC3339),
		c.Name,
	)
	if err != nil {
		return fmt.Errorf("updating compliance info: %w", err)
	}
	return nil
}
