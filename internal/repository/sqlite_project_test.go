package repository

import (
	"context"
	"testing"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("PROJ-P1",
		testutil.WithProjectType("Internal"),
		testutil.WithBillable(true),
	)
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, "PROJ-P1")
	require.NoError(t, err)
	assert.Equal(t, "Internal", fetched.ProjectType)
	assert.True(t, fetched.Billable)
	assert.Equal(t, domain.ProjectOpen, fetched.Status)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "PROJ-MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectRepo_ListByRef(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("PROJ-P1", testutil.WithProjectType("Internal"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("PROJ-P2", testutil.WithProjectType("External"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("PROJ-P3", testutil.WithProjectTemplate("TPL-1"))))

	byType, err := repo.ListByRef(ctx, "project_type", "Internal")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "PROJ-P1", byType[0].Name)

	byTemplate, err := repo.ListByRef(ctx, "project_template", "TPL-1")
	require.NoError(t, err)
	require.Len(t, byTemplate, 1)
	assert.Equal(t, "PROJ-P3", byTemplate[0].Name)
}

func TestProjectRepo_ListByRef_RejectsUnknownField(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.ListByRef(context.Background(), "status", "open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported project reference field")
}

func TestProjectRepo_Update_PersistsBillable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("PROJ-P1")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Billable = true
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, "PROJ-P1")
	require.NoError(t, err)
	assert.True(t, fetched.Billable)
}

func TestProjectRepo_Delete_CascadesToTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("PROJ-P1")))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask("TASK-T1", "PROJ-P1")))

	require.NoError(t, projects.Delete(ctx, "PROJ-P1"))

	_, err := tasks.GetByID(ctx, "TASK-T1")
	require.Error(t, err, "tasks should be removed with their project")
}
