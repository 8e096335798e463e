package cli

import (
	"context"
	"fmt"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

func newTxnCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Manage transactional documents",
	}

	cmd.AddCommand(
		newTxnAddCmd(app),
		newTxnSubmitCmd(app),
	)

	return cmd
}

func newTxnAddCmd(app *App) *cobra.Command {
	var doctype, name, customer, supplier, quotationTo, partyName, project string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a transactional document",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Transaction{
				Name:        name,
				Doctype:     domain.Doctype(doctype),
				Customer:    customer,
				Supplier:    supplier,
				QuotationTo: quotationTo,
				PartyName:   partyName,
				Project:     project,
			}
			if err := app.Transactions.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", t.Doctype, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&doctype, "doctype", "", "Document type (e.g. Sales Order, Purchase Invoice)")
	cmd.Flags().StringVar(&name, "name", "", "Record name (generated when omitted)")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer reference")
	cmd.Flags().StringVar(&supplier, "supplier", "", "Supplier reference")
	cmd.Flags().StringVar(&quotationTo, "quotation-to", "", "Quotation addressee type (Customer|Lead)")
	cmd.Flags().StringVar(&partyName, "party-name", "", "Quotation party name")
	cmd.Flags().StringVar(&project, "project", "", "Project reference")
	_ = cmd.MarkFlagRequired("doctype")

	return cmd
}

func newTxnSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit NAME",
		Short: "Submit a draft document, validating its party's license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			advisories, err := app.Transactions.Submit(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s\n", args[0])
			printAdvisories(cmd, advisories)
			return nil
		},
	}
}
