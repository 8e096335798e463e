package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// refDoctypeValue is a pflag.Value restricted to the billable cascade's
// reference doctypes.
type refDoctypeValue domain.Doctype

var _ pflag.Value = (*refDoctypeValue)(nil)

var refDoctypes = []domain.Doctype{
	domain.DoctypeProject,
	domain.DoctypeTask,
	domain.DoctypeProjectType,
	domain.DoctypeProjectTemplate,
}

func (v *refDoctypeValue) String() string { return string(*v) }
func (v *refDoctypeValue) Type() string   { return "doctype" }

func (v *refDoctypeValue) Set(s string) error {
	for _, doctype := range refDoctypes {
		if strings.EqualFold(s, string(doctype)) {
			*v = refDoctypeValue(doctype)
			return nil
		}
	}
	return fmt.Errorf("%w: cannot propagate billable from %q", domain.ErrUnknownDoctype, s)
}

func newBillableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billable",
		Short: "Propagate the billable flag to timesheet entries",
	}

	cmd.AddCommand(newBillableSetCmd(app))
	return cmd
}

func newBillableSetCmd(app *App) *cobra.Command {
	var doctype refDoctypeValue
	var name string
	var billable bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set billable on a reference document and cascade downward",
		Long: `Set the billable flag on a reference document and cascade it to every
timesheet entry logged against it. A Project Type or Project Template
reference first saves the flag onto the matching projects and their tasks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Billing.UpdateTimesheetLogs(context.Background(), contract.BillableUpdateRequest{
				RefDoctype: domain.Doctype(doctype),
				RefName:    name,
				Billable:   billable,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBillableResult(result))
			return nil
		},
	}

	cmd.Flags().Var(&doctype, "doctype", "Reference doctype (Project|Task|Project Type|Project Template)")
	cmd.Flags().StringVar(&name, "name", "", "Reference document name")
	cmd.Flags().BoolVar(&billable, "billable", true, "Billable flag value to propagate")
	_ = cmd.MarkFlagRequired("doctype")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
