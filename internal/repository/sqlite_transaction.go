package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// SQLiteTransactionRepo implements TransactionRepo over SQLite.
type SQLiteTransactionRepo struct {
	db db.DBTX
}

func NewSQLiteTransactionRepo(dbtx db.DBTX) *SQLiteTransactionRepo {
	return &SQLiteTransactionRepo{db: dbtx}
}

const transactionColumns = `name, doctype, customer, supplier, quotation_to, party_name, project, docstatus, created_at, updated_at`

func (r *SQLiteTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.Name,
		string(t.Doctype),
		t.Customer,
		t.Supplier,
		t.QuotationTo,
		t.PartyName,
		t.Project,
		int(t.DocStatus),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

func (r *SQLiteTransactionRepo) GetByID(ctx context.Context, name string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)

	var t domain.Transaction
	var doctypeStr, createdAtStr, updatedAtStr string
	var docstatus int
	err := row.Scan(
		&t.Name, &doctypeStr, &t.Customer, &t.Supplier,
		&t.QuotationTo, &t.PartyName, &t.Project,
		&docstatus, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("transaction %s not found", name)
		}
		return nil, fmt.Errorf("scanning transaction: %w", err)
	}
	t.Doctype = domain.Doctype(doctypeStr)
	t.DocStatus = domain.DocStatus(docstatus)
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTransactionRepo) SetDocStatus(ctx context.Context, name string, status domain.DocStatus) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET docstatus = ?, updated_at = ? WHERE name = ?`,
		int(status), now, name,
	)
	if err != nil {
		return fmt.Errorf("updating transaction docstatus: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("transaction %s not found", name)
	}
	return nil
}
