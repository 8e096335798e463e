package cli

import (
	"github.com/rowanmaas/veriflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Licenses     service.LicenseService
	Parties      service.PartyService
	Compliance   service.ComplianceInfoService
	Billing      service.BillingService
	Links        service.LinkService
	Projects     service.ProjectService
	Tasks        service.TaskService
	Timesheets   service.TimesheetService
	Transactions service.TransactionService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "veriflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "veriflow",
		Short: "Compliance license validation and project-billing hooks",
	}

	root.AddCommand(
		newPartyCmd(app),
		newLicenseCmd(app),
		newBillableCmd(app),
		newLinksCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newTimesheetCmd(app),
		newTxnCmd(app),
	)

	return root
}
