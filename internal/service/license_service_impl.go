package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type licenseService struct {
	parties    repository.PartyRepo
	compliance repository.ComplianceInfoRepo
	observer   UseCaseObserver
}

func NewLicenseService(parties repository.PartyRepo, compliance repository.ComplianceInfoRepo, observers ...UseCaseObserver) LicenseService {
	return &licenseService{
		parties:    parties,
		compliance: compliance,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *licenseService) ValidateEntityLicense(ctx context.Context, partyType domain.PartyType, partyName string) (result *contract.EntityLicenseResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "validate-entity-license",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"party_type": string(partyType), "party": partyName},
		})
	}()

	license, err := s.GetDefaultLicense(ctx, partyType, partyName)
	if err != nil {
		return nil, err
	}
	if license == "" {
		return &contract.EntityLicenseResult{}, nil
	}

	result = &contract.EntityLicenseResult{License: license}

	info, err := s.compliance.GetByID(ctx, license)
	if err != nil {
		// No compliance record behind the license id: advisory, not a
		// blocked save.
		result.Advisories = append(result.Advisories, unverifiableAdvisory(license))
		return result, nil
	}

	switch {
	case info.ExpiryDate == nil:
		result.Advisories = append(result.Advisories, unverifiableAdvisory(info.LicenseNumber))
	case info.Expired(time.Now().UTC()):
		result.Advisories = append(result.Advisories, domain.Advisory{
			Message: fmt.Sprintf("%s's license number %s has expired on %s, proceed with caution",
				partyName, info.LicenseNumber, info.ExpiryDate.Format("2006-01-02")),
		})
	}
	return result, nil
}

func (s *licenseService) ValidateLicenseExpiry(ctx context.Context, txn *domain.Transaction) ([]domain.Advisory, error) {
	partyType, partyName, ok := txn.PartyRef()
	if !ok {
		return nil, nil
	}
	result, err := s.ValidateEntityLicense(ctx, partyType, partyName)
	if err != nil {
		return nil, err
	}
	return result.Advisories, nil
}

func (s *licenseService) GetDefaultLicense(ctx context.Context, partyType domain.PartyType, partyName string) (string, error) {
	party, err := s.parties.Get(ctx, partyType, partyName)
	if err != nil {
		return "", err
	}
	return party.DefaultLicense(), nil
}

func (s *licenseService) FilterLicense(ctx context.Context, req contract.LicenseFilterRequest) ([]contract.LicenseFilterRow, error) {
	rows, err := s.parties.LicenseRows(ctx, req.PartyName)
	if err != nil {
		return nil, err
	}

	results := make([]contract.LicenseFilterRow, 0, len(rows))
	for _, row := range rows {
		if req.Txt != "" && !strings.HasPrefix(strings.ToLower(row.License), strings.ToLower(req.Txt)) {
			continue
		}
		results = append(results, contract.LicenseFilterRow{
			License:     row.License,
			IsDefault:   row.IsDefault,
			LicenseType: row.LicenseType,
		})
	}

	if req.Start > 0 {
		if req.Start >= len(results) {
			return []contract.LicenseFilterRow{}, nil
		}
		results = results[req.Start:]
	}
	if req.PageLength > 0 && len(results) > req.PageLength {
		results = results[:req.PageLength]
	}
	return results, nil
}

func unverifiableAdvisory(licenseNumber string) domain.Advisory {
	return domain.Advisory{
		Message: fmt.Sprintf("Could not verify the status of license number %s, proceed with caution", licenseNumber),
	}
}
