package cli

import (
	"context"
	"fmt"

	"github.com/rowanmaas/veriflow/internal/cli/formatter"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, project, subject string
	var billable bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task under a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				Name:     name,
				Project:  project,
				Subject:  subject,
				Billable: billable,
				Status:   domain.TaskOpen,
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s in %s\n", t.Name, project)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Record name (generated when omitted)")
	cmd.Flags().StringVar(&project, "project", "", "Parent project")
	cmd.Flags().StringVar(&subject, "subject", "", "Task subject")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().BoolVar(&billable, "billable", false, "Billable flag")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListByProject(context.Background(), project)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No tasks in %s.\n", project)
				return nil
			}

			headers := []string{"NAME", "SUBJECT", "BILLABLE", "STATUS"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.Bold(t.Name),
					t.Subject,
					billableMark(t.Billable),
					string(t.Status),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Tasks: "+project, formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Parent project")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
