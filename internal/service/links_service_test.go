package service

import (
	"context"
	"testing"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedDocuments_NoLinks(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1")))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeProject, "P1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Docs, "docs must serialize as [] rather than null")
	assert.Empty(t, result.Docs)
}

func TestLinkedDocuments_DisallowedDoctypesSkipped(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1")))
	require.NoError(t, repos.transactions.Create(ctx, testutil.NewTestTransaction("SO-0001",
		domain.DoctypeSalesOrder, testutil.WithTxnProject("P1"))))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeProject, "P1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count, "sales order link is outside the allow-list")
	assert.Empty(t, result.Docs)
}

func TestLinkedDocuments_SingleTask(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1")))
	require.NoError(t, repos.tasks.Create(ctx, testutil.NewTestTask("T1", "P1")))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeProject, "P1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Docs, 1)
	assert.Equal(t, domain.LinkedDoc{
		Doctype:   domain.DoctypeTask,
		Name:      "T1",
		DocStatus: domain.DocStatusDraft,
		LinkCount: 0,
	}, result.Docs[0])
}

func TestLinkedDocuments_SharedTimesheetDeduplicated(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1")))
	require.NoError(t, repos.tasks.Create(ctx, testutil.NewTestTask("T1", "P1")))
	require.NoError(t, repos.timesheets.Create(ctx, testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-1", "P1", "T1"))))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeProject, "P1")
	require.NoError(t, err)

	// The timesheet is reachable both directly and through the task; it
	// appears once but counts as a link everywhere it is referenced.
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Docs, 2)
	assert.Equal(t, "TS-0001", result.Docs[0].Name)
	assert.Equal(t, 0, result.Docs[0].LinkCount)
	assert.Equal(t, "T1", result.Docs[1].Name)
	assert.Equal(t, 1, result.Docs[1].LinkCount)
}

func TestLinkedDocuments_SortedAscendingByLinkCount(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1",
		testutil.WithProjectType("Internal"))))
	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P2",
		testutil.WithProjectType("Internal"))))
	require.NoError(t, repos.tasks.Create(ctx, testutil.NewTestTask("T1", "P1")))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeProjectType, "Internal")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Docs, 3)

	// Leaf nodes first, then P1 with its single task link.
	assert.Equal(t, "T1", result.Docs[0].Name)
	assert.Equal(t, "P2", result.Docs[1].Name)
	assert.Equal(t, "P1", result.Docs[2].Name)
	assert.Equal(t, 1, result.Docs[2].LinkCount)
}

func TestLinkedDocuments_TimesheetDocStatusSurfaced(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1")))
	require.NoError(t, repos.timesheets.Create(ctx, testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-1", "P1", ""))))
	require.NoError(t, repos.timesheets.SetDocStatus(ctx, "TS-0001", domain.DocStatusSubmitted))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeProject, "P1")
	require.NoError(t, err)
	require.Len(t, result.Docs, 1)
	assert.Equal(t, domain.DocStatusSubmitted, result.Docs[0].DocStatus)
}

func TestLinkedDocuments_TaskScope(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	svc := NewLinkService(repos.links)

	require.NoError(t, repos.projects.Create(ctx, testutil.NewTestProject("P1")))
	require.NoError(t, repos.tasks.Create(ctx, testutil.NewTestTask("T1", "P1")))
	require.NoError(t, repos.timesheets.Create(ctx, testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-1", "P1", "T1"))))
	require.NoError(t, repos.timesheets.Create(ctx, testutil.NewTestTimesheet("TS-0002",
		testutil.NewTestEntry("TSE-2", "P1", ""))))

	result, err := svc.LinkedDocuments(ctx, domain.DoctypeTask, "T1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count, "only timesheets logging against the task count")
	require.Len(t, result.Docs, 1)
	assert.Equal(t, "TS-0001", result.Docs[0].Name)
}
