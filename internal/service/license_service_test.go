package service

import (
	"context"
	"testing"
	"time"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntityLicense_NoLicenses(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer)))

	result, err := svc.ValidateEntityLicense(ctx, domain.PartyCustomer, "CUST-0001")
	require.NoError(t, err)
	assert.Empty(t, result.License)
	assert.Empty(t, result.Advisories)
}

func TestValidateEntityLicense_MissingParty(t *testing.T) {
	repos := setupRepos(t)
	svc := NewLicenseService(repos.parties, repos.compliance)

	_, err := svc.ValidateEntityLicense(context.Background(), domain.PartyCustomer, "CUST-MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateEntityLicense_ValidLicense(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithLicense("LIC-A", true))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-A",
		testutil.WithExpiry(time.Now().UTC().AddDate(1, 0, 0)))))

	result, err := svc.ValidateEntityLicense(ctx, domain.PartyCustomer, "CUST-0001")
	require.NoError(t, err)
	assert.Equal(t, "LIC-A", result.License)
	assert.Empty(t, result.Advisories)
}

func TestValidateEntityLicense_MissingExpiryUnverifiable(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithLicense("LIC-A", true))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-A",
		testutil.WithLicenseNumber("CL-2026-001"))))

	result, err := svc.ValidateEntityLicense(ctx, domain.PartyCustomer, "CUST-0001")
	require.NoError(t, err)
	assert.Equal(t, "LIC-A", result.License)
	require.Len(t, result.Advisories, 1)
	assert.Contains(t, result.Advisories[0].Message, "Could not verify")
	assert.Contains(t, result.Advisories[0].Message, "CL-2026-001")
}

func TestValidateEntityLicense_MissingComplianceRecordUnverifiable(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithLicense("LIC-ORPHAN", true))))

	result, err := svc.ValidateEntityLicense(ctx, domain.PartyCustomer, "CUST-0001")
	require.NoError(t, err, "missing compliance record must not block")
	require.Len(t, result.Advisories, 1)
	assert.Contains(t, result.Advisories[0].Message, "Could not verify")
}

func TestValidateEntityLicense_ExpiredLicense(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	expiry := time.Now().UTC().AddDate(0, 0, -30)
	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("SUPP-0001", domain.PartySupplier,
		testutil.WithLicense("LIC-A", true))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-A",
		testutil.WithLicenseNumber("CL-2025-042"),
		testutil.WithExpiry(expiry))))

	result, err := svc.ValidateEntityLicense(ctx, domain.PartySupplier, "SUPP-0001")
	require.NoError(t, err, "expiry is advisory, never a hard failure")
	require.Len(t, result.Advisories, 1)
	assert.Contains(t, result.Advisories[0].Message, "SUPP-0001")
	assert.Contains(t, result.Advisories[0].Message, "CL-2025-042")
	assert.Contains(t, result.Advisories[0].Message, expiry.Format("2006-01-02"))
}

func TestValidateLicenseExpiry_DispatchesByDoctype(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	expired := time.Now().UTC().AddDate(0, 0, -5)
	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithLicense("LIC-C", true))))
	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("SUPP-0001", domain.PartySupplier,
		testutil.WithLicense("LIC-S", true))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-C", testutil.WithExpiry(expired))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-S", testutil.WithExpiry(expired))))

	salesOrder := testutil.NewTestTransaction("SO-0001", domain.DoctypeSalesOrder, testutil.WithCustomer("CUST-0001"))
	advisories, err := svc.ValidateLicenseExpiry(ctx, salesOrder)
	require.NoError(t, err)
	require.Len(t, advisories, 1)
	assert.Contains(t, advisories[0].Message, "CUST-0001")

	purchaseOrder := testutil.NewTestTransaction("PO-0001", domain.DoctypePurchaseOrder, testutil.WithSupplier("SUPP-0001"))
	advisories, err = svc.ValidateLicenseExpiry(ctx, purchaseOrder)
	require.NoError(t, err)
	require.Len(t, advisories, 1)
	assert.Contains(t, advisories[0].Message, "SUPP-0001")

	quotation := testutil.NewTestTransaction("QTN-0001", domain.DoctypeQuotation,
		testutil.WithQuotationTo("Customer", "CUST-0001"))
	advisories, err = svc.ValidateLicenseExpiry(ctx, quotation)
	require.NoError(t, err)
	require.Len(t, advisories, 1)
}

func TestValidateLicenseExpiry_UnknownDoctypeNoOp(t *testing.T) {
	repos := setupRepos(t)
	svc := NewLicenseService(repos.parties, repos.compliance)

	txn := testutil.NewTestTransaction("X-0001", domain.DoctypeProject)
	advisories, err := svc.ValidateLicenseExpiry(context.Background(), txn)
	require.NoError(t, err)
	assert.Empty(t, advisories)
}

func TestGetDefaultLicense(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-NONE", domain.PartyCustomer)))
	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-DEF", domain.PartyCustomer,
		testutil.WithLicense("LIC-A", false),
		testutil.WithLicense("LIC-B", true))))

	license, err := svc.GetDefaultLicense(ctx, domain.PartyCustomer, "CUST-NONE")
	require.NoError(t, err)
	assert.Empty(t, license)

	license, err = svc.GetDefaultLicense(ctx, domain.PartyCustomer, "CUST-DEF")
	require.NoError(t, err)
	assert.Equal(t, "LIC-B", license)
}

func TestFilterLicense(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLicenseService(repos.parties, repos.compliance)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithTypedLicense("LIC-A", "cultivation", true),
		testutil.WithTypedLicense("LIC-B", "retail", false),
		testutil.WithTypedLicense("OTH-C", "retail", false))))

	rows, err := svc.FilterLicense(ctx, contract.NewLicenseFilterRequest("CUST-0001"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, contract.LicenseFilterRow{License: "LIC-A", IsDefault: true, LicenseType: "cultivation"}, rows[0])

	req := contract.NewLicenseFilterRequest("CUST-0001")
	req.Txt = "lic"
	rows, err = svc.FilterLicense(ctx, req)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "txt should narrow on license prefix")

	req = contract.NewLicenseFilterRequest("CUST-0001")
	req.Start = 1
	req.PageLength = 1
	rows, err = svc.FilterLicense(ctx, req)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LIC-B", rows[0].License)
}

func TestFilterLicense_UnknownPartyEmpty(t *testing.T) {
	repos := setupRepos(t)
	svc := NewLicenseService(repos.parties, repos.compliance)

	rows, err := svc.FilterLicense(context.Background(), contract.NewLicenseFilterRequest("CUST-MISSING"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
