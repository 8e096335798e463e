package formatter

import (
	"fmt"
	"strings"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// FormatLicenseRows renders a party's license child table.
func FormatLicenseRows(partyName string, rows []domain.LicenseRow) string {
	if len(rows) == 0 {
		return Dim(fmt.Sprintf("No licenses on %s.", partyName))
	}

	headers := []string{"#", "LICENSE", "TYPE", "DEFAULT"}
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		licenseType := row.LicenseType
		if licenseType == "" {
			licenseType = Dim("--")
		}
		tableRows = append(tableRows, []string{
			Dim(fmt.Sprintf("%d", row.Idx)),
			Bold(row.License),
			licenseType,
			DefaultMark(row.IsDefault),
		})
	}

	return RenderBox("Licenses: "+partyName, RenderTable(headers, tableRows))
}

// FormatValidationResult renders the outcome of a license validation: the
// resolved default license plus any advisories.
func FormatValidationResult(partyName string, result *contract.EntityLicenseResult) string {
	var b strings.Builder

	if result.License == "" {
		b.WriteString(Dim(fmt.Sprintf("%s has no licenses; nothing to validate.", partyName)))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PARTY  "), Bold(partyName)))
		b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("LICENSE"), StyleFg.Render(result.License)))
	}

	if advisories := FormatAdvisories(result.Advisories); advisories != "" {
		b.WriteString("\n\n" + advisories)
	} else if result.License != "" {
		b.WriteString("\n\n" + StyleGreen.Render("✓ License verified"))
	}

	return RenderBox("License Validation", b.String())
}

// FormatAdvisories renders advisory warnings, one per line. Empty input
// renders as an empty string.
func FormatAdvisories(advisories []domain.Advisory) string {
	if len(advisories) == 0 {
		return ""
	}
	lines := make([]string, 0, len(advisories))
	for _, a := range advisories {
		lines = append(lines, StyleYellow.Render("⚠ "+a.Message))
	}
	return strings.Join(lines, "\n")
}

// FormatFilterRows renders license autocomplete rows.
func FormatFilterRows(rows []contract.LicenseFilterRow) string {
	if len(rows) == 0 {
		return Dim("No matching licenses.")
	}

	headers := []string{"LICENSE", "TYPE", "DEFAULT"}
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		licenseType := row.LicenseType
		if licenseType == "" {
			licenseType = Dim("--")
		}
		tableRows = append(tableRows, []string{
			Bold(row.License),
			licenseType,
			DefaultMark(row.IsDefault),
		})
	}
	return RenderTable(headers, tableRows)
}
