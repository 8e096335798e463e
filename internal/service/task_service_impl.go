package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo) TaskService {
	return &taskService{tasks: tasks, projects: projects}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Project == "" {
		return fmt.Errorf("task requires a project")
	}
	// Verify the parent project exists so the task doesn't fail on the
	// foreign key with an opaque constraint error.
	if _, err := s.projects.GetByID(ctx, t.Project); err != nil {
		return err
	}
	if t.Name == "" {
		t.Name = domain.NewDocName("TASK")
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskOpen
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, name string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, name)
}

func (s *taskService) ListByProject(ctx context.Context, project string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, project)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}
