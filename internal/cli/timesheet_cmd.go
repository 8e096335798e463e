package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

func newTimesheetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Manage timesheets",
	}

	cmd.AddCommand(
		newTimesheetAddCmd(app),
		newTimesheetInspectCmd(app),
		newTimesheetSubmitCmd(app),
	)

	return cmd
}

// parseEntrySpec parses one --entry value of the form PROJECT[:TASK[:HOURS]].
func parseEntrySpec(spec string) (domain.TimesheetEntry, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 3 || parts[0] == "" {
		return domain.TimesheetEntry{}, fmt.Errorf("invalid entry %q, expected PROJECT[:TASK[:HOURS]]", spec)
	}

	entry := domain.TimesheetEntry{Project: parts[0], Hours: 1}
	if len(parts) > 1 {
		entry.Task = parts[1]
	}
	if len(parts) > 2 {
		hours, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || hours <= 0 {
			return domain.TimesheetEntry{}, fmt.Errorf("invalid hours in entry %q", spec)
		}
		entry.Hours = hours
	}
	return entry, nil
}

func newTimesheetAddCmd(app *App) *cobra.Command {
	var name string
	var entrySpecs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a timesheet with entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]domain.TimesheetEntry, 0, len(entrySpecs))
			for _, spec := range entrySpecs {
				entry, err := parseEntrySpec(spec)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			}

			ts := &domain.Timesheet{Name: name, Entries: entries}
			if err := app.Timesheets.Create(context.Background(), ts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created timesheet %s with %d entries\n", ts.Name, len(ts.Entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Record name (generated when omitted)")
	cmd.Flags().StringArrayVar(&entrySpecs, "entry", nil, "Entry spec PROJECT[:TASK[:HOURS]] (repeatable)")

	return cmd
}

func newTimesheetInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show a timesheet and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := app.Timesheets.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			headers := []string{"ENTRY", "PROJECT", "TASK", "HOURS", "BILLABLE"}
			rows := make([][]string, 0, len(ts.Entries))
			for _, e := range ts.Entries {
				rows = append(rows, []string{
					formatter.Bold(e.Name),
					orDim(e.Project),
					orDim(e.Task),
					fmt.Sprintf("%.2f", e.Hours),
					billableMark(e.Billable),
				})
			}

			body := formatter.DocStatusPill(ts.DocStatus) + "\n\n" + formatter.RenderTable(headers, rows)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Timesheet: "+ts.Name, body))
			return nil
		},
	}
}

func newTimesheetSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit NAME",
		Short: "Submit a draft timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timesheets.Submit(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted timesheet %s\n", args[0])
			return nil
		},
	}
}
