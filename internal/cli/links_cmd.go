package cli

import (
	"context"
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

func newLinksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Explore linked documents",
	}

	cmd.AddCommand(
		newLinksListCmd(app),
		newLinksDoctypesCmd(app),
		newLinksViewCmd(app),
	)

	return cmd
}

func newLinksDoctypesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctypes DOCTYPE",
		Short: "Show which doctypes can link to the given doctype",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctypes := app.Links.LinkedDoctypes(domain.Doctype(args[0]))
			if len(doctypes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing links to %s.\n", args[0])
				return nil
			}
			for _, doctype := range doctypes {
				fmt.Fprintln(cmd.OutOrStdout(), string(doctype))
			}
			return nil
		},
	}
}

func newLinksListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list DOCTYPE NAME",
		Short: "List documents linked to the given record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctype := domain.Doctype(args[0])
			result, err := app.Links.LinkedDocuments(context.Background(), doctype, args[1])
			if err != nil {
				return err
			}

			if asJSON {
				encoded, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLinkedDocuments(doctype, args[1], result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the listing as JSON")

	return cmd
}

func newLinksViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view DOCTYPE NAME",
		Short: "Browse linked documents in an interactive viewer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("links view requires an interactive terminal (use `links list` instead)")
			}

			model := newLinksViewModel(app, domain.Doctype(args[0]), args[1])
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
