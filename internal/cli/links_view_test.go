package cli

import (
	"context"
	"testing"

	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/teatest"
	"github.com/rowanmaas/veriflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLinkedProject(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, app.Projects.Create(ctx, testutil.NewTestProject("P1")))
	require.NoError(t, app.Tasks.Create(ctx, testutil.NewTestTask("T1", "P1")))
	require.NoError(t, app.Timesheets.Create(ctx, testutil.NewTestTimesheet("TS-0001",
		testutil.NewTestEntry("TSE-1", "P1", "T1"))))
}

func TestLinksView_ShowsListing(t *testing.T) {
	app := testApp(t)
	seedLinkedProject(t, app)

	d := teatest.New(t, newLinksViewModel(app, domain.DoctypeProject, "P1"), teatest.WithSize(100, 30))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "P1")
	assert.Contains(t, view, "T1")
	assert.Contains(t, view, "TS-0001")
}

func TestLinksView_DrillInAndBack(t *testing.T) {
	app := testApp(t)
	seedLinkedProject(t, app)

	d := teatest.New(t, newLinksViewModel(app, domain.DoctypeProject, "P1"), teatest.WithSize(100, 30))
	d.DrainInit()

	// Docs are sorted ascending by link count: TS-0001 first, then T1.
	// Move to T1 and drill in; its listing shows the shared timesheet.
	d.PressDown()
	d.PressEnter()
	view := d.View()
	assert.Contains(t, view, "TASK T1")
	assert.Contains(t, view, "TS-0001")

	d.PressBackspace()
	assert.Contains(t, d.View(), "PROJECT P1")
}

func TestLinksView_QuitKey(t *testing.T) {
	app := testApp(t)
	seedLinkedProject(t, app)

	d := teatest.New(t, newLinksViewModel(app, domain.DoctypeProject, "P1"), teatest.WithSize(100, 30))
	d.DrainInit()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestLinksView_EmptyListing(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Projects.Create(context.Background(), testutil.NewTestProject("P-EMPTY")))

	d := teatest.New(t, newLinksViewModel(app, domain.DoctypeProject, "P-EMPTY"), teatest.WithSize(100, 30))
	d.DrainInit()

	assert.Contains(t, d.View(), "No linked documents")
}
