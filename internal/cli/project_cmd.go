package cli

import (
	"context"
	"fmt"

	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, projectName, projectType, projectTemplate string
	var billable bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:            name,
				ProjectName:     projectName,
				ProjectType:     projectType,
				ProjectTemplate: projectTemplate,
				Billable:        billable,
				Status:          domain.ProjectOpen,
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Record name (generated when omitted)")
	cmd.Flags().StringVar(&projectName, "title", "", "Project title")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type")
	cmd.Flags().StringVar(&projectTemplate, "template", "", "Project template")
	cmd.Flags().BoolVar(&billable, "billable", false, "Billable flag")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}

			headers := []string{"NAME", "TITLE", "TYPE", "BILLABLE", "STATUS"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					formatter.Bold(p.Name),
					p.ProjectName,
					orDim(p.ProjectType),
					billableMark(p.Billable),
					string(p.Status),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Projects", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var projectType, projectTemplate, status string

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("type") {
				p.ProjectType = projectType
			}
			if cmd.Flags().Changed("template") {
				p.ProjectTemplate = projectTemplate
			}
			if cmd.Flags().Changed("status") {
				p.Status = domain.ProjectStatus(status)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectType, "type", "", "Project type")
	cmd.Flags().StringVar(&projectTemplate, "template", "", "Project template")
	cmd.Flags().StringVar(&status, "status", "", "Project status (open|completed|cancelled)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", args[0])
			return nil
		},
	}
}

func orDim(s string) string {
	if s == "" {
		return formatter.Dim("--")
	}
	return s
}

func billableMark(billable bool) string {
	if billable {
		return formatter.StyleGreen.Render("yes")
	}
	return formatter.Dim("no")
}
