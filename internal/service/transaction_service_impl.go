package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type transactionService struct {
	transactions repository.TransactionRepo
	licenses     LicenseService
}

func NewTransactionService(transactions repository.TransactionRepo, licenses LicenseService) TransactionService {
	return &transactionService{transactions: transactions, licenses: licenses}
}

func (s *transactionService) Create(ctx context.Context, t *domain.Transaction) error {
	if t.Doctype == "" {
		return fmt.Errorf("transaction requires a doctype")
	}
	if t.Name == "" {
		t.Name = domain.NewDocName("TXN")
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.transactions.Create(ctx, t)
}

func (s *transactionService) GetByID(ctx context.Context, name string) (*domain.Transaction, error) {
	return s.transactions.GetByID(ctx, name)
}

// Submit runs the license-expiry hook for the referenced party and then
// marks the document submitted. Advisories never block the submit.
func (s *transactionService) Submit(ctx context.Context, name string) ([]domain.Advisory, error) {
	txn, err := s.transactions.GetByID(ctx, name)
	if err != nil {
		return nil, err
	}
	if txn.DocStatus != domain.DocStatusDraft {
		return nil, fmt.Errorf("transaction %s is not a draft", name)
	}

	advisories, err := s.licenses.ValidateLicenseExpiry(ctx, txn)
	if err != nil {
		return nil, err
	}

	if err := s.transactions.SetDocStatus(ctx, name, domain.DocStatusSubmitted); err != nil {
		return nil, err
	}
	return advisories, nil
}
