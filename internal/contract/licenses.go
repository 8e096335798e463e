package contract

import "github.com/rowanmaas/veriflow/internal/domain"

// LicenseFilterRequest selects license rows for autocomplete. Txt narrows
// on the license id prefix; Start/PageLength page through results.
type LicenseFilterRequest struct {
	PartyName  string `json:"party_name"`
	Txt        string `json:"txt"`
	Start      int    `json:"start"`
	PageLength int    `json:"page_len"`
}

func NewLicenseFilterRequest(partyName string) LicenseFilterRequest {
	return LicenseFilterRequest{PartyName: partyName, PageLength: 20}
}

// LicenseFilterRow is one autocomplete result row.
type LicenseFilterRow struct {
	License     string `json:"license"`
	IsDefault   bool   `json:"is_default"`
	LicenseType string `json:"license_type"`
}

// EntityLicenseResult is the outcome of validating a party's default
// license: the license id (empty when the party has none) and any advisory
// warnings raised.
type EntityLicenseResult struct {
	License    string            `json:"license"`
	Advisories []domain.Advisory `json:"advisories,omitempty"`
}
