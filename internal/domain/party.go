package domain

import "time"

// LicenseRow is one row of a party's license child table. Idx is 1-based,
// matching the host store's child-row numbering.
type LicenseRow struct {
	Idx         int
	License     string
	IsDefault   bool
	LicenseType string
}

// Party is a Customer or Supplier record together with its license rows.
type Party struct {
	Name      string
	PartyType PartyType
	DocStatus DocStatus
	Licenses  []LicenseRow
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultLicense returns the license id of the row flagged default, or ""
// when the party has no licenses or none is flagged.
func (p *Party) DefaultLicense() string {
	for _, row := range p.Licenses {
		if row.IsDefault {
			return row.License
		}
	}
	return ""
}

// DuplicateLicenseIDs returns license ids that appear on more than one row,
// in first-seen order.
func (p *Party) DuplicateLicenseIDs() []string {
	seen := make(map[string]int, len(p.Licenses))
	var dups []string
	for _, row := range p.Licenses {
		seen[row.License]++
		if seen[row.License] == 2 {
			dups = append(dups, row.License)
		}
	}
	return dups
}

// DefaultCount returns how many rows are flagged default.
func (p *Party) DefaultCount() int {
	n := 0
	for _, row := range p.Licenses {
		if row.IsDefault {
			n++
		}
	}
	return n
}

// Renumber assigns 1-based Idx values in slice order.
func (p *Party) Renumber() {
	for i := range p.Licenses {
		p.Licenses[i].Idx = i + 1
	}
}
