package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type billingService struct {
	projects   repository.ProjectRepo
	tasks      repository.TaskRepo
	timesheets repository.TimesheetRepo
	observer   UseCaseObserver
}

func NewBillingService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	timesheets repository.TimesheetRepo,
	observers ...UseCaseObserver,
) BillingService {
	return &billingService{
		projects:   projects,
		tasks:      tasks,
		timesheets: timesheets,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// UpdateTimesheetLogs propagates the billable flag. Each write is an
// independent document save; there is no compensation on partial failure
// (earlier saves stay committed).
func (s *billingService) UpdateTimesheetLogs(ctx context.Context, req contract.BillableUpdateRequest) (result *contract.BillableUpdateResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-timesheet-logs",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"ref_doctype": string(req.RefDoctype),
				"ref_name":    req.RefName,
				"billable":    req.Billable,
			},
		})
	}()

	result = &contract.BillableUpdateResult{}
	var entries []domain.TimesheetEntry

	if field, ok := domain.EntryRefField(req.RefDoctype); ok {
		entries, err = s.timesheets.ListEntriesByRef(ctx, field, req.RefName)
		if err != nil {
			return nil, err
		}
	} else if field, ok := domain.ProjectRefField(req.RefDoctype); ok {
		projects, err := s.updateLinkedProjects(ctx, field, req.RefName, req.Billable)
		if err != nil {
			return nil, err
		}
		for _, project := range projects {
			result.Projects = append(result.Projects, project.Name)
			logs, err := s.projectTimeLogs(ctx, project.Name)
			if err != nil {
				return nil, err
			}
			entries = append(entries, logs...)
		}
	} else {
		return nil, fmt.Errorf("%w: cannot propagate billable from %q", domain.ErrUnknownDoctype, req.RefDoctype)
	}

	for _, entry := range entries {
		if err := s.timesheets.SetEntryBillable(ctx, entry.Name, req.Billable); err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, entry.Name)
	}
	return result, nil
}

// updateLinkedProjects saves the billable flag on every project matching
// the reference column, cascading to each project's tasks.
func (s *billingService) updateLinkedProjects(ctx context.Context, field, value string, billable bool) ([]*domain.Project, error) {
	projects, err := s.projects.ListByRef(ctx, field, value)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		project.Billable = billable
		project.UpdatedAt = time.Now().UTC()
		if err := s.projects.Update(ctx, project); err != nil {
			return nil, err
		}
		if err := s.updateLinkedTasks(ctx, project.Name, billable); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *billingService) updateLinkedTasks(ctx context.Context, project string, billable bool) error {
	tasks, err := s.tasks.ListByProject(ctx, project)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		task.Billable = billable
		task.UpdatedAt = time.Now().UTC()
		if err := s.tasks.Update(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

func (s *billingService) projectTimeLogs(ctx context.Context, project string) ([]domain.TimesheetEntry, error) {
	return s.timesheets.ListEntriesByRef(ctx, "project", project)
}
