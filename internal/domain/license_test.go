package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	sameDay := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)

	cases := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{"missing expiry is not expired", nil, false},
		{"yesterday is expired", &yesterday, true},
		{"same calendar day is not expired", &sameDay, false},
		{"tomorrow is not expired", &tomorrow, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &ComplianceInfo{Name: "LIC-A", ExpiryDate: tc.expiry}
			assert.Equal(t, tc.want, c.Expired(today))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysBetween(base.AddDate(0, 0, -10), base))
	assert.Equal(t, 0, DaysBetween(base, base))
	// Future expiry never yields a negative day count.
	assert.Equal(t, 0, DaysBetween(base.AddDate(0, 0, 3), base))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}
