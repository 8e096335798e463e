package service

import (
	"context"
	"testing"
	"time"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_Submit_RunsExpiryHook(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	licenses := NewLicenseService(repos.parties, repos.compliance)
	svc := NewTransactionService(repos.transactions, licenses)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithLicense("LIC-A", true))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-A",
		testutil.WithExpiry(time.Now().UTC().AddDate(0, 0, -7)))))

	require.NoError(t, svc.Create(ctx, testutil.NewTestTransaction("SO-0001", domain.DoctypeSalesOrder,
		testutil.WithCustomer("CUST-0001"))))

	advisories, err := svc.Submit(ctx, "SO-0001")
	require.NoError(t, err, "advisories never block a submit")
	require.Len(t, advisories, 1)
	assert.Contains(t, advisories[0].Message, "CUST-0001")

	stored, err := repos.transactions.GetByID(ctx, "SO-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.DocStatusSubmitted, stored.DocStatus)
}

func TestTransactionService_Submit_CleanLicense(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	licenses := NewLicenseService(repos.parties, repos.compliance)
	svc := NewTransactionService(repos.transactions, licenses)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer,
		testutil.WithLicense("LIC-A", true))))
	require.NoError(t, repos.compliance.Create(ctx, testutil.NewTestCompliance("LIC-A",
		testutil.WithExpiry(time.Now().UTC().AddDate(1, 0, 0)))))

	require.NoError(t, svc.Create(ctx, testutil.NewTestTransaction("SI-0001", domain.DoctypeSalesInvoice,
		testutil.WithCustomer("CUST-0001"))))

	advisories, err := svc.Submit(ctx, "SI-0001")
	require.NoError(t, err)
	assert.Empty(t, advisories)
}

func TestTransactionService_Submit_NotDraft(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	licenses := NewLicenseService(repos.parties, repos.compliance)
	svc := NewTransactionService(repos.transactions, licenses)

	require.NoError(t, repos.parties.Create(ctx, testutil.NewTestParty("CUST-0001", domain.PartyCustomer)))
	require.NoError(t, svc.Create(ctx, testutil.NewTestTransaction("SO-0001", domain.DoctypeSalesOrder,
		testutil.WithCustomer("CUST-0001"))))

	_, err := svc.Submit(ctx, "SO-0001")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "SO-0001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a draft")
}

func TestTransactionService_Create_RequiresDoctype(t *testing.T) {
	repos := setupRepos(t)
	licenses := NewLicenseService(repos.parties, repos.compliance)
	svc := NewTransactionService(repos.transactions, licenses)

	err := svc.Create(context.Background(), &domain.Transaction{Name: "X-0001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctype")
}
