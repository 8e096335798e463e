package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type partyService struct {
	parties    repository.PartyRepo
	compliance repository.ComplianceInfoRepo
	uow        db.UnitOfWork
}

func NewPartyService(parties repository.PartyRepo, compliance repository.ComplianceInfoRepo, uow db.UnitOfWork) PartyService {
	return &partyService{parties: parties, compliance: compliance, uow: uow}
}

func (s *partyService) Create(ctx context.Context, p *domain.Party) ([]domain.Advisory, error) {
	if !domain.ValidPartyTypes[string(p.PartyType)] {
		return nil, fmt.Errorf("invalid party type %q", p.PartyType)
	}
	if p.Name == "" {
		prefix := "CUST"
		if p.PartyType == domain.PartySupplier {
			prefix = "SUPP"
		}
		p.Name = domain.NewDocName(prefix)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.persist(ctx, p, func(ctx context.Context, repo repository.PartyRepo) error {
		return repo.Create(ctx, p)
	})
}

func (s *partyService) Get(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	return s.parties.Get(ctx, partyType, name)
}

func (s *partyService) Save(ctx context.Context, p *domain.Party) ([]domain.Advisory, error) {
	p.UpdatedAt = time.Now().UTC()
	return s.persist(ctx, p, func(ctx context.Context, repo repository.PartyRepo) error {
		return repo.Save(ctx, p)
	})
}

func (s *partyService) List(ctx context.Context, partyType domain.PartyType) ([]*domain.Party, error) {
	return s.parties.List(ctx, partyType)
}

// persist runs the license lifecycle hooks and writes the party document
// (header plus child table) in one unit of work, matching the host store's
// per-document atomicity.
func (s *partyService) persist(ctx context.Context, p *domain.Party, write func(ctx context.Context, repo repository.PartyRepo) error) ([]domain.Advisory, error) {
	p.Renumber()
	if err := ValidateDefaultLicense(p); err != nil {
		return nil, err
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return write(ctx, repository.NewSQLitePartyRepo(tx))
	})
	if err != nil {
		return nil, err
	}

	return s.expiredAdvisories(ctx, p), nil
}

func (s *partyService) expiredAdvisories(ctx context.Context, p *domain.Party) []domain.Advisory {
	expiries := make(map[string]*time.Time, len(p.Licenses))
	for _, row := range p.Licenses {
		info, err := s.compliance.GetByID(ctx, row.License)
		if err != nil {
			continue
		}
		expiries[row.License] = info.ExpiryDate
	}
	return ExpiredLicenseAdvisories(p, expiries, time.Now().UTC())
}
