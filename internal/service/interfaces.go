package service

import (
	"context"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// LicenseService covers the whitelisted license-validation procedures.
// Hard rejections come back as errors wrapping the domain sentinels;
// everything non-blocking is an Advisory.
type LicenseService interface {
	// ValidateEntityLicense checks the party's default license against its
	// compliance record. A party without licenses yields an empty result.
	ValidateEntityLicense(ctx context.Context, partyType domain.PartyType, partyName string) (*contract.EntityLicenseResult, error)
	// ValidateLicenseExpiry dispatches ValidateEntityLicense for the party
	// referenced by a transactional document. Doctypes outside the
	// license-checked set are a no-op.
	ValidateLicenseExpiry(ctx context.Context, txn *domain.Transaction) ([]domain.Advisory, error)
	GetDefaultLicense(ctx context.Context, partyType domain.PartyType, partyName string) (string, error)
	FilterLicense(ctx context.Context, req contract.LicenseFilterRequest) ([]contract.LicenseFilterRow, error)
}

// PartyService persists Customer/Supplier records, running the license
// lifecycle hooks on every save.
type PartyService interface {
	Create(ctx context.Context, p *domain.Party) ([]domain.Advisory, error)
	Get(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)
	Save(ctx context.Context, p *domain.Party) ([]domain.Advisory, error)
	List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error)
}

// BillingService propagates the billable flag from a reference document
// down through projects and tasks to timesheet entries. Saves are
// independent; a failure partway leaves earlier saves committed.
type BillingService interface {
	UpdateTimesheetLogs(ctx context.Context, req contract.BillableUpdateRequest) (*contract.BillableUpdateResult, error)
}

// LinkService builds the linked-document listing for the relationship
// viewer.
type LinkService interface {
	LinkedDocuments(ctx context.Context, doctype domain.Doctype, name string) (*contract.LinkedDocuments, error)
	// LinkedDoctypes returns the doctypes that can link to the given
	// doctype, in registry order.
	LinkedDoctypes(doctype domain.Doctype) []domain.Doctype
}

type ComplianceInfoService interface {
	Create(ctx context.Context, c *domain.ComplianceInfo) error
	GetByID(ctx context.Context, name string) (*domain.ComplianceInfo, error)
	Update(ctx context.Context, c *domain.ComplianceInfo) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, name string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, name string) (*domain.Task, error)
	ListByProject(ctx context.Context, project string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
}

type TimesheetService interface {
	Create(ctx context.Context, ts *domain.Timesheet) error
	GetByID(ctx context.Context, name string) (*domain.Timesheet, error)
	Submit(ctx context.Context, name string) error
}

// TransactionService persists transactional documents. Submit runs the
// license-expiry lifecycle hook and returns its advisories; the submit
// itself is never blocked by them.
type TransactionService interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, name string) (*domain.Transaction, error)
	Submit(ctx context.Context, name string) ([]domain.Advisory, error)
}
