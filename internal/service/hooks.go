package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rowanmaas/veriflow/internal/domain"
)

// ValidateDefaultLicense enforces the single-default-license invariant on a
// party before it is saved. Duplicate license ids are rejected outright.
// A party with exactly one license gets it forced default; a party with
// several must have exactly one flagged.
func ValidateDefaultLicense(p *domain.Party) error {
	if dups := p.DuplicateLicenseIDs(); len(dups) > 0 {
		return fmt.Errorf("%w: remove duplicate license %s from %s before proceeding",
			domain.ErrDuplicateLicense, strings.Join(dups, ", "), p.Name)
	}

	switch len(p.Licenses) {
	case 0:
		return nil
	case 1:
		p.Licenses[0].IsDefault = true
		return nil
	}

	switch n := p.DefaultCount(); {
	case n == 0:
		return fmt.Errorf("%w: there must be at least one default license for %s, found none",
			domain.ErrNoDefaultLicense, p.Name)
	case n > 1:
		return fmt.Errorf("%w: there can be only one default license for %s, found %d",
			domain.ErrMultipleDefaultLicenses, p.Name, n)
	}
	return nil
}

// ExpiredLicenseAdvisories returns one advisory per license row whose
// compliance record expired before today, naming the row index, license id
// and days since expiry. Rows without a known expiry date are skipped.
func ExpiredLicenseAdvisories(p *domain.Party, expiries map[string]*time.Time, now time.Time) []domain.Advisory {
	var advisories []domain.Advisory
	for _, row := range p.Licenses {
		expiry, ok := expiries[row.License]
		if !ok || expiry == nil {
			continue
		}
		if !domain.DateOnly(*expiry).Before(domain.DateOnly(now)) {
			continue
		}
		advisories = append(advisories, domain.Advisory{
			Message: fmt.Sprintf("Row #%d: license %s has expired %d days ago",
				row.Idx, row.License, domain.DaysBetween(*expiry, now)),
		})
	}
	return advisories
}
