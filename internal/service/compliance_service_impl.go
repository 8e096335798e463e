package service

import (
	"context"
	"time"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type complianceInfoService struct {
	compliance repository.ComplianceInfoRepo
}

func NewComplianceInfoService(compliance repository.ComplianceInfoRepo) ComplianceInfoService {
	return &complianceInfoService{compliance: compliance}
}

func (s *complianceInfoService) Create(ctx context.Context, c *domain.ComplianceInfo) error {
	if c.Name == "" {
		c.Name = domain.NewDocName("LIC")
	}
	if c.LicenseNumber == "" {
		c.LicenseNumber = c.Name
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.compliance.Create(ctx, c)
}

func (s *complianceInfoService) GetByID(ctx context.Context, name string) (*domain.ComplianceInfo, error) {
	return s.compliance.GetByID(ctx, name)
}

func (s *complianceInfoService) Update(ctx context.Context, c *domain.ComplianceInfo) error {
	c.UpdatedAt = time.Now().UTC()
	return s.compliance.Update(ctx, c)
}
