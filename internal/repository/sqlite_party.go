package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// SQLitePartyRepo implements PartyRepo over SQLite.
type SQLitePartyRepo struct {
	db db.DBTX
}

// NewSQLitePartyRepo creates a new SQLitePartyRepo. Pass a *sql.Tx-backed
// DBTX for transaction-scoped use.
func NewSQLitePartyRepo(dbtx db.DBTX) *SQLitePartyRepo {
	return &SQLitePartyRepo{db: dbtx}
}

func (r *SQLitePartyRepo) Create(ctx context.Context, p *domain.Party) error {
	query := `INSERT INTO parties (name, party_type, docstatus, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.PartyType),
		int(p.DocStatus),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting party: %w", err)
	}
	return r.replaceLicenseRows(ctx, p)
}

func (r *SQLitePartyRepo) Get(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	query := `SELECT name, party_type, docstatus, created_at, updated_at
		FROM parties WHERE party_type = ? AND name = ?`
	row := r.db.QueryRowContext(ctx, query, string(partyType), name)

	var p domain.Party
	var typeStr, createdAtStr, updatedAtStr string
	var docstatus int
	err := row.Scan(&p.Name, &typeStr, &docstatus, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s %s not found", partyType, name)
		}
		return nil, fmt.Errorf("scanning party: %w", err)
	}
	p.PartyType = domain.PartyType(typeStr)
	p.DocStatus = domain.DocStatus(docstatus)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	p.Licenses, err = r.LicenseRows(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save persists the party header and replaces its license child table,
// matching a full document save in the host store. Run inside a unit of
// work so header and child rows land atomically.
func (r *SQLitePartyRepo) Save(ctx context.Context, p *domain.Party) error {
	query := `UPDATE parties SET docstatus = ?, updated_at = ? WHERE name = ?`
	_, err := r.db.ExecContext(ctx, query,
		int(p.DocStatus),
		p.UpdatedAt.Format(time.RFC3339),
		p.Name,
	)
	if err != nil {
		return fmt.Errorf("updating party: %w", err)
	}
	return r.replaceLicenseRows(ctx, p)
}

func (r *SQLitePartyRepo) List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error) {
	query := `SELECT name, docstatus, created_at, updated_at
		FROM parties WHERE party_type = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, string(partyType))
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}
	defer rows.Close()

	var parties []*domain.Party
	for rows.Next() {
		p := &domain.Party{PartyType: partyType}
		var createdAtStr, updatedAtStr string
		var docstatus int
		if err := rows.Scan(&p.Name, &docstatus, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning party row: %w", err)
		}
		p.DocStatus = domain.DocStatus(docstatus)
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parties: %w", err)
	}
	return parties, nil
}

func (r *SQLitePartyRepo) LicenseRows(ctx context.Context, partyName string) ([]domain.LicenseRow, error) {
	query := `SELECT idx, license, is_default, license_type
		FROM party_licenses WHERE parent = ? ORDER BY idx`
	rows, err := r.db.QueryContext(ctx, query, partyName)
	if err != nil {
		return nil, fmt.Errorf("listing license rows: %w", err)
	}
	defer rows.Close()

	var licenses []domain.LicenseRow
	for rows.Next() {
		var row domain.LicenseRow
		var isDefault int
		if err := rows.Scan(&row.Idx, &row.License, &isDefault, &row.LicenseType); err != nil {
			return nil, fmt.Errorf("scanning license row: %w", err)
		}
		row.IsDefault = intToBool(isDefault)
		licenses = append(licenses, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating license rows: %w", err)
	}
	return licenses, nil
}

func (r *SQLitePartyRepo) replaceLicenseRows(ctx context.Context, p *domain.Party) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM party_licenses WHERE parent = ?`, p.Name); err != nil {
		return fmt.Errorf("clearing license rows: %w", err)
	}
	for _, row := range p.Licenses {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO party_licenses (parent, idx, license, is_default, license_type)
			 VALUES (?, ?, ?, ?, ?)`,
			p.Name, row.Idx, row.License, boolToInt(row.IsDefault), row.LicenseType,
		)
		if err != nil {
			return fmt.Errorf("inserting license row %d: %w", row.Idx, err)
		}
	}
	return nil
}
