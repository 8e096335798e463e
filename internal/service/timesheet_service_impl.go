package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type timesheetService struct {
	timesheets repository.TimesheetRepo
	uow        db.UnitOfWork
}

func NewTimesheetService(timesheets repository.TimesheetRepo, uow db.UnitOfWork) TimesheetService {
	return &timesheetService{timesheets: timesheets, uow: uow}
}

// Create persists the timesheet and its entry child rows in one unit of
// work, the same per-document atomicity the host store gives a single save.
func (s *timesheetService) Create(ctx context.Context, ts *domain.Timesheet) error {
	if ts.Name == "" {
		ts.Name = domain.NewDocName("TS")
	}
	now := time.Now().UTC()
	ts.CreatedAt = now
	ts.UpdatedAt = now
	for i := range ts.Entries {
		if ts.Entries[i].Name == "" {
			ts.Entries[i].Name = domain.NewDocName("TSE")
		}
		ts.Entries[i].Parent = ts.Name
		ts.Entries[i].CreatedAt = now
		ts.Entries[i].UpdatedAt = now
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTimesheetRepo(tx).Create(ctx, ts)
	})
}

func (s *timesheetService) GetByID(ctx context.Context, name string) (*domain.Timesheet, error) {
	return s.timesheets.GetByID(ctx, name)
}

func (s *timesheetService) Submit(ctx context.Context, name string) error {
	ts, err := s.timesheets.GetByID(ctx, name)
	if err != nil {
		return err
	}
	if ts.DocStatus != domain.DocStatusDraft {
		return fmt.Errorf("timesheet %s is not a draft", name)
	}
	return s.timesheets.SetDocStatus(ctx, name, domain.DocStatusSubmitted)
}
