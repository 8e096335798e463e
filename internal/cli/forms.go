package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rowanmaas/veriflow/internal/cli/formatter"
)

// veriflowHuhTheme returns a custom huh theme using the existing Gruvbox
// palette.
func veriflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runLicenseRowForm collects a new license row interactively.
func runLicenseRowForm(license, licenseType *string, isDefault *bool) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("License id").
				Placeholder("LIC-1234").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("license id is required")
					}
					return nil
				}).
				Value(license),
			huh.NewSelect[string]().
				Title("License type").
				Options(
					huh.NewOption("Cultivation", "cultivation"),
					huh.NewOption("Retail", "retail"),
					huh.NewOption("Distribution", "distribution"),
					huh.NewOption("Other", ""),
				).
				Value(licenseType),
			huh.NewConfirm().
				Title("Default license?").
				Value(isDefault),
		),
	).WithTheme(veriflowHuhTheme()).WithShowHelp(false)

	return form.Run()
}
