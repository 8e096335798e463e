package repository

import (
	"context"

	"github.com/rowanmaas/veriflow/internal/domain"
)

// PartyRepo provides access to Customer/Supplier records and their license
// child rows. Save replaces the child table wholesale, mirroring a full
// document save in the host store.
type PartyRepo interface {
	Create(ctx context.Context, p *domain.Party) error
	Get(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)
	Save(ctx context.Context, p *domain.Party) error
	List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error)
	LicenseRows(ctx context.Context, partyName string) ([]domain.LicenseRow, error)
}

type ComplianceInfoRepo interface {
	Create(ctx context.Context, c *domain.ComplianceInfo) error
	GetByID(ctx context.Context, name string) (*domain.ComplianceInfo, error)
	Update(ctx context.Context, c *domain.ComplianceInfo) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// ListByRef selects projects by an enumerated reference column
	// (see domain.ProjectRefField).
	ListByRef(ctx context.Context, field, value string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, name string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, name string) (*domain.Task, error)
	ListByProject(ctx context.Context, project string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, name string) error
}

// TimesheetRepo covers timesheets and their entry child rows. Entry
// updates go through SetEntryBillable, the analog of the host's
// set-value primitive: one independent write per entry, no surrounding
// transaction.
type TimesheetRepo interface {
	Create(ctx context.Context, ts *domain.Timesheet) error
	GetByID(ctx context.Context, name string) (*domain.Timesheet, error)
	// ListEntriesByRef selects entries by an enumerated reference column
	// (see domain.EntryRefField).
	ListEntriesByRef(ctx context.Context, field, value string) ([]domain.TimesheetEntry, error)
	SetEntryBillable(ctx context.Context, entryName string, billable bool) error
	SetDocStatus(ctx context.Context, name string, status domain.DocStatus) error
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, name string) (*domain.Transaction, error)
	SetDocStatus(ctx context.Context, name string, status domain.DocStatus) error
}

// LinkRepo resolves the link-metadata registry: which doctypes can link to
// a given doctype, and the concrete records that do.
type LinkRepo interface {
	LinkedDoctypes(doctype domain.Doctype) []domain.Doctype
	LinkedDocs(ctx context.Context, doctype domain.Doctype, name string) ([]domain.DocRef, error)
}
