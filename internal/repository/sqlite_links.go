package repository

import (
	"context"
	"fmt"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// linkSource describes one incoming-link relation against a target doctype:
// rows matched by query (one ? placeholder for the target name) produce
// links of the given doctype. When doctypeFromRow is set, the query selects
// (name, doctype, docstatus) and the doctype column wins; otherwise it
// selects (name, docstatus).
type linkSource struct {
	doctype        domain.Doctype
	doctypes       []domain.Doctype
	query          string
	doctypeFromRow bool
}

// linkRegistry is the explicit link-metadata mapping: for each doctype, the
// relations through which other documents reference it. The original host
// derived this from field metadata at runtime; here it is enumerated and
// covered by tests.
var linkRegistry = map[domain.Doctype][]linkSource{
	domain.DoctypeProject: {
		{
			doctype: domain.DoctypeTask,
			query:   `SELECT name, docstatus FROM tasks WHERE project = ? ORDER BY name`,
		},
		{
			doctype: domain.DoctypeTimesheet,
			query: `SELECT DISTINCT t.name, t.docstatus FROM timesheets t
				JOIN timesheet_entries e ON e.parent = t.name
				WHERE e.project = ? ORDER BY t.name`,
		},
		{
			doctypeFromRow: true,
			doctypes: []domain.Doctype{
				domain.DoctypeSalesOrder, domain.DoctypeSalesInvoice, domain.DoctypeDeliveryNote,
				domain.DoctypeQuotation, domain.DoctypeSupplierQuotation, domain.DoctypePurchaseOrder,
				domain.DoctypePurchaseInvoice, domain.DoctypePurchaseReceipt,
			},
			query: `SELECT name, doctype, docstatus FROM transactions WHERE project = ? ORDER BY name`,
		},
	},
	domain.DoctypeTask: {
		{
			doctype: domain.DoctypeTimesheet,
			query: `SELECT DISTINCT t.name, t.docstatus FROM timesheets t
				JOIN timesheet_entries e ON e.parent = t.name
				WHERE e.task = ? ORDER BY t.name`,
		},
	},
	domain.DoctypeProjectType: {
		{
			doctype: domain.DoctypeProject,
			query:   `SELECT name, docstatus FROM projects WHERE project_type = ? ORDER BY name`,
		},
	},
	domain.DoctypeProjectTemplate: {
		{
			doctype: domain.DoctypeProject,
			query:   `SELECT name, docstatus FROM projects WHERE project_template = ? ORDER BY name`,
		},
	},
}

// SQLiteLinkRepo resolves the link registry against the SQLite store.
type SQLiteLinkRepo struct {
	db db.DBTX
}

func NewSQLiteLinkRepo(dbtx db.DBTX) *SQLiteLinkRepo {
	return &SQLiteLinkRepo{db: dbtx}
}

// LinkedDoctypes returns the doctypes that can link to the given doctype,
// in registry order.
func (r *SQLiteLinkRepo) LinkedDoctypes(doctype domain.Doctype) []domain.Doctype {
	var doctypes []domain.Doctype
	for _, src := range linkRegistry[doctype] {
		if src.doctypeFromRow {
			doctypes = append(doctypes, src.doctypes...)
			continue
		}
		doctypes = append(doctypes, src.doctype)
	}
	return doctypes
}

// LinkedDocs returns every record that links to the named document, in
// registry order then name order within each relation.
func (r *SQLiteLinkRepo) LinkedDocs(ctx context.Context, doctype domain.Doctype, name string) ([]domain.DocRef, error) {
	var refs []domain.DocRef
	for _, src := range linkRegistry[doctype] {
		rows, err := r.db.QueryContext(ctx, src.query, name)
		if err != nil {
			return nil, fmt.Errorf("resolving %s links: %w", doctype, err)
		}
		for rows.Next() {
			ref := domain.DocRef{Doctype: src.doctype}
			var docstatus int
			var scanErr error
			if src.doctypeFromRow {
				var doctypeStr string
				scanErr = rows.Scan(&ref.Name, &doctypeStr, &docstatus)
				ref.Doctype = domain.Doctype(doctypeStr)
			} else {
				scanErr = rows.Scan(&ref.Name, &docstatus)
			}
			if scanErr != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning link row: %w", scanErr)
			}
			ref.DocStatus = domain.DocStatus(docstatus)
			refs = append(refs, ref)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("iterating link rows: %w", err)
		}
		rows.Close()
	}
	return refs, nil
}
