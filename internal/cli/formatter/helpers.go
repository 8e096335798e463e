package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// ExpiryStyled renders a license expiry date with urgency coloring: red when
// past, yellow when within 30 days, plain otherwise. A nil expiry renders as
// a dim unverified marker.
func ExpiryStyled(expiry *time.Time, now time.Time) string {
	if expiry == nil {
		return StyleDim.Render("unverified")
	}
	text := expiry.Format("2006-01-02")
	switch {
	case expiry.Before(now):
		return StyleRed.Render(text)
	case expiry.Before(now.AddDate(0, 0, 30)):
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}
