package testutil

import (
	"time"

	"github.com/rowanmaas/veriflow/internal/domain"
)

// Party options

type PartyOption func(*domain.Party)

func WithLicense(license string, isDefault bool) PartyOption {
	return func(p *domain.Party) {
		p.Licenses = append(p.Licenses, domain.LicenseRow{
			Idx:       len(p.Licenses) + 1,
			License:   license,
			IsDefault: isDefault,
		})
	}
}

func WithTypedLicense(license, licenseType string, isDefault bool) PartyOption {
	return func(p *domain.Party) {
		p.Licenses = append(p.Licenses, domain.LicenseRow{
			Idx:         len(p.Licenses) + 1,
			License:     license,
			LicenseType: licenseType,
			IsDefault:   isDefault,
		})
	}
}

func NewTestParty(name string, partyType domain.PartyType, opts ...PartyOption) *domain.Party {
	now := time.Now().UTC()
	p := &domain.Party{
		Name:      name,
		PartyType: partyType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ComplianceInfo options

type ComplianceOption func(*domain.ComplianceInfo)

func WithExpiry(d time.Time) ComplianceOption {
	return func(c *domain.ComplianceInfo) {
		c.ExpiryDate = &d
	}
}

func WithLicenseNumber(n string) ComplianceOption {
	return func(c *domain.ComplianceInfo) {
		c.LicenseNumber = n
	}
}

func NewTestCompliance(name string, opts ...ComplianceOption) *domain.ComplianceInfo {
	now := time.Now().UTC()
	c := &domain.ComplianceInfo{
		Name:          name,
		LicenseNumber: name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Project options

type ProjectOption func(*domain.Project)

func WithProjectType(t string) ProjectOption {
	return func(p *domain.Project) {
		p.ProjectType = t
	}
}

func WithProjectTemplate(t string) ProjectOption {
	return func(p *domain.Project) {
		p.ProjectTemplate = t
	}
}

func WithBillable(b bool) ProjectOption {
	return func(p *domain.Project) {
		p.Billable = b
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		Name:        name,
		ProjectName: name,
		Status:      domain.ProjectOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options

type TaskOption func(*domain.Task)

func WithTaskBillable(b bool) TaskOption {
	return func(t *domain.Task) {
		t.Billable = b
	}
}

func NewTestTask(name, project string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		Name:      name,
		Project:   project,
		Subject:   name,
		Status:    domain.TaskOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Timesheet options

type EntryOption func(*domain.TimesheetEntry)

func WithEntryBillable(b bool) EntryOption {
	return func(e *domain.TimesheetEntry) {
		e.Billable = b
	}
}

func WithHours(h float64) EntryOption {
	return func(e *domain.TimesheetEntry) {
		e.Hours = h
	}
}

func NewTestEntry(name, project, task string, opts ...EntryOption) domain.TimesheetEntry {
	now := time.Now().UTC()
	e := domain.TimesheetEntry{
		Name:      name,
		Project:   project,
		Task:      task,
		Hours:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func NewTestTimesheet(name string, entries ...domain.TimesheetEntry) *domain.Timesheet {
	now := time.Now().UTC()
	for i := range entries {
		entries[i].Parent = name
	}
	return &domain.Timesheet{
		Name:      name,
		Entries:   entries,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transaction options

type TransactionOption func(*domain.Transaction)

func WithTxnProject(project string) TransactionOption {
	return func(t *domain.Transaction) {
		t.Project = project
	}
}

func WithCustomer(customer string) TransactionOption {
	return func(t *domain.Transaction) {
		t.Customer = customer
	}
}

func WithSupplier(supplier string) TransactionOption {
	return func(t *domain.Transaction) {
		t.Supplier = supplier
	}
}

func WithQuotationTo(to, partyName string) TransactionOption {
	return func(t *domain.Transaction) {
		t.QuotationTo = to
		t.PartyName = partyName
	}
}

func NewTestTransaction(name string, doctype domain.Doctype, opts ...TransactionOption) *domain.Transaction {
	now := time.Now().UTC()
	t := &domain.Transaction{
		Name:      name,
		Doctype:   doctype,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
