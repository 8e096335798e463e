package domain

import "time"

// ComplianceInfo holds the expiry metadata behind a license id. ExpiryDate
// is nil when the issuing registry has no verifiable record.
type ComplianceInfo struct {
	Name          string
	LicenseNumber string
	ExpiryDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Expired reports whether the license expiry date is strictly before the
// given day. A missing expiry date is never considered expired; it is
// unverifiable instead.
func (c *ComplianceInfo) Expired(today time.Time) bool {
	if c.ExpiryDate == nil {
		return false
	}
	return DateOnly(*c.ExpiryDate).Before(DateOnly(today))
}

// DateOnly truncates t to midnight UTC, so calendar-day comparisons ignore
// the time-of-day component.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, never negative.
func DaysBetween(a, b time.Time) int {
	days := int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
