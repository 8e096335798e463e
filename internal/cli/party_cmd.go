package cli

import (
	"context"
	"fmt"

	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

// parsePartyType validates the party type argument shared by party and
// license commands.
func parsePartyType(input string) (domain.PartyType, error) {
	if !domain.ValidPartyTypes[input] {
		return "", fmt.Errorf("invalid party type %q, expected Customer or Supplier", input)
	}
	return domain.PartyType(input), nil
}

func newPartyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Manage customers and suppliers",
	}

	cmd.AddCommand(
		newPartyAddCmd(app),
		newPartyListCmd(app),
		newPartyInspectCmd(app),
		newPartyLicenseAddCmd(app),
		newPartySetDefaultCmd(app),
	)

	return cmd
}

func newPartyAddCmd(app *App) *cobra.Command {
	var partyTypeStr, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a customer or supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			partyType, err := parsePartyType(partyTypeStr)
			if err != nil {
				return err
			}

			p := &domain.Party{Name: name, PartyType: partyType}
			advisories, err := app.Parties.Create(context.Background(), p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", p.PartyType, p.Name)
			printAdvisories(cmd, advisories)
			return nil
		},
	}

	cmd.Flags().StringVar(&partyTypeStr, "type", "", "Party type (Customer|Supplier)")
	cmd.Flags().StringVar(&name, "name", "", "Record name (generated when omitted)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newPartyListCmd(app *App) *cobra.Command {
	var partyTypeStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers or suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			partyType, err := parsePartyType(partyTypeStr)
			if err != nil {
				return err
			}

			parties, err := app.Parties.List(context.Background(), partyType)
			if err != nil {
				return err
			}
			if len(parties) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %ss found.\n", partyTypeStr)
				return nil
			}

			headers := []string{"NAME", "LICENSES", "DEFAULT"}
			rows := make([][]string, 0, len(parties))
			for _, p := range parties {
				defaultLicense := p.DefaultLicense()
				if defaultLicense == "" {
					defaultLicense = formatter.Dim("--")
				}
				rows = append(rows, []string{
					formatter.Bold(p.Name),
					fmt.Sprintf("%d", len(p.Licenses)),
					defaultLicense,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(partyTypeStr+"s", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&partyTypeStr, "type", "", "Party type (Customer|Supplier)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newPartyInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TYPE NAME",
		Short: "Show a party and its license rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			partyType, err := parsePartyType(args[0])
			if err != nil {
				return err
			}

			p, err := app.Parties.Get(context.Background(), partyType, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLicenseRows(p.Name, p.Licenses))
			return nil
		},
	}
}

func newPartyLicenseAddCmd(app *App) *cobra.Command {
	var license, licenseType string
	var isDefault bool

	cmd := &cobra.Command{
		Use:   "license-add TYPE NAME",
		Short: "Add a license row to a party",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			partyType, err := parsePartyType(args[0])
			if err != nil {
				return err
			}

			p, err := app.Parties.Get(ctx, partyType, args[1])
			if err != nil {
				return err
			}

			// Without --license, fall back to the interactive form on a
			// terminal.
			if license == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--license is required in non-interactive mode")
				}
				if err := runLicenseRowForm(&license, &licenseType, &isDefault); err != nil {
					return err
				}
			}

			p.Licenses = append(p.Licenses, domain.LicenseRow{
				License:     license,
				LicenseType: licenseType,
				IsDefault:   isDefault,
			})

			advisories, err := app.Parties.Save(ctx, p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added license %s to %s\n", license, p.Name)
			printAdvisories(cmd, advisories)
			return nil
		},
	}

	cmd.Flags().StringVar(&license, "license", "", "License id")
	cmd.Flags().StringVar(&licenseType, "license-type", "", "License type")
	cmd.Flags().BoolVar(&isDefault, "default", false, "Flag this license as the default")

	return cmd
}

func newPartySetDefaultCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default TYPE NAME LICENSE",
		Short: "Make a license the party's default",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			partyType, err := parsePartyType(args[0])
			if err != nil {
				return err
			}

			p, err := app.Parties.Get(ctx, partyType, args[1])
			if err != nil {
				return err
			}

			found := false
			for i := range p.Licenses {
				match := p.Licenses[i].License == args[2]
				p.Licenses[i].IsDefault = match
				found = found || match
			}
			if !found {
				return fmt.Errorf("license %s not on %s", args[2], p.Name)
			}

			advisories, err := app.Parties.Save(ctx, p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default license of %s is now %s\n", p.Name, args[2])
			printAdvisories(cmd, advisories)
			return nil
		},
	}
}

// printAdvisories writes advisory warnings beneath a command's primary
// output.
func printAdvisories(cmd *cobra.Command, advisories []domain.Advisory) {
	if rendered := formatter.FormatAdvisories(advisories); rendered != "" {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}
}
