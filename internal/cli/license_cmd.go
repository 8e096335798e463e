package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

func newLicenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Validate and look up compliance licenses",
	}

	cmd.AddCommand(
		newLicenseValidateCmd(app),
		newLicenseDefaultCmd(app),
		newLicenseFilterCmd(app),
		newLicenseRegisterCmd(app),
	)

	return cmd
}

func newLicenseValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TYPE NAME",
		Short: "Validate a party's default license against its compliance record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			partyType, err := parsePartyType(args[0])
			if err != nil {
				return err
			}

			result, err := app.Licenses.ValidateEntityLicense(context.Background(), partyType, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatValidationResult(args[1], result))
			return nil
		},
	}
}

func newLicenseDefaultCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "default TYPE NAME",
		Short: "Print a party's default license id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			partyType, err := parsePartyType(args[0])
			if err != nil {
				return err
			}

			license, err := app.Licenses.GetDefaultLicense(context.Background(), partyType, args[1])
			if err != nil {
				return err
			}
			if license == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no default license\n", args[1])
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), license)
			return nil
		},
	}
}

func newLicenseFilterCmd(app *App) *cobra.Command {
	var txt string
	var start, pageLength int

	cmd := &cobra.Command{
		Use:   "filter PARTY",
		Short: "List a party's licenses for autocomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewLicenseFilterRequest(args[0])
			req.Txt = txt
			req.Start = start
			if pageLength > 0 {
				req.PageLength = pageLength
			}

			rows, err := app.Licenses.FilterLicense(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFilterRows(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&txt, "txt", "", "License id prefix filter")
	cmd.Flags().IntVar(&start, "start", 0, "Result offset")
	cmd.Flags().IntVar(&pageLength, "page-length", 0, "Maximum rows to return")

	return cmd
}

func newLicenseRegisterCmd(app *App) *cobra.Command {
	var licenseNumber, expiry string

	cmd := &cobra.Command{
		Use:   "register NAME",
		Short: "Record compliance info for a license id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := buildComplianceInfo(args[0], licenseNumber, expiry)
			if err != nil {
				return err
			}

			if err := app.Compliance.Create(context.Background(), info); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered compliance info for %s\n", info.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&licenseNumber, "number", "", "Registry license number (defaults to NAME)")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD, omit when unverifiable)")

	return cmd
}

func buildComplianceInfo(name, licenseNumber, expiry string) (*domain.ComplianceInfo, error) {
	info := &domain.ComplianceInfo{Name: name, LicenseNumber: licenseNumber}
	if info.LicenseNumber == "" {
		info.LicenseNumber = name
	}
	if expiry != "" {
		expiryDate, err := time.Parse("2006-01-02", expiry)
		if err != nil {
			return nil, fmt.Errorf("invalid expiry date %q: %w", expiry, err)
		}
		info.ExpiryDate = &expiryDate
	}
	return info, nil
}
