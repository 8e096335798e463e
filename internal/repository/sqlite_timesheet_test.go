package repository

import (
	"context"
	"testing"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimesheetRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	ts := testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-0001", "PROJ-P1", "TASK-T1", testutil.WithHours(2.5)),
		testutil.NewTestEntry("TSE-0002", "PROJ-P1", "", testutil.WithEntryBillable(true)),
	)
	require.NoError(t, repo.Create(ctx, ts))

	fetched, err := repo.GetByID(ctx, "TS-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.DocStatusDraft, fetched.DocStatus)
	require.Len(t, fetched.Entries, 2)
	assert.Equal(t, "TS-0001", fetched.Entries[0].Parent)
	assert.Equal(t, 2.5, fetched.Entries[0].Hours)
	assert.True(t, fetched.Entries[1].Billable)
}

func TestTimesheetRepo_ListEntriesByRef(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-0001", "PROJ-P1", "TASK-T1"),
		testutil.NewTestEntry("TSE-0002", "PROJ-P2", "TASK-T2"),
		testutil.NewTestEntry("TSE-0003", "PROJ-P1", "TASK-T2"),
	)))

	byProject, err := repo.ListEntriesByRef(ctx, "project", "PROJ-P1")
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	assert.Equal(t, "TSE-0001", byProject[0].Name)
	assert.Equal(t, "TSE-0003", byProject[1].Name)

	byTask, err := repo.ListEntriesByRef(ctx, "task", "TASK-T2")
	require.NoError(t, err)
	require.Len(t, byTask, 2)
}

func TestTimesheetRepo_ListEntriesByRef_RejectsUnknownField(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)

	_, err := repo.ListEntriesByRef(context.Background(), "parent; DROP TABLE timesheets", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported entry reference field")
}

func TestTimesheetRepo_SetEntryBillable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-0001", "PROJ-P1", ""),
	)))

	require.NoError(t, repo.SetEntryBillable(ctx, "TSE-0001", true))

	fetched, err := repo.GetByID(ctx, "TS-0001")
	require.NoError(t, err)
	assert.True(t, fetched.Entries[0].Billable)
}

func TestTimesheetRepo_SetEntryBillable_MissingEntry(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)

	err := repo.SetEntryBillable(context.Background(), "TSE-MISSING", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTimesheetRepo_SetDocStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTimesheet("TS-0001")))
	require.NoError(t, repo.SetDocStatus(ctx, "TS-0001", domain.DocStatusSubmitted))

	fetched, err := repo.GetByID(ctx, "TS-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.DocStatusSubmitted, fetched.DocStatus)
}
