package service

import (
	"testing"

	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/repository"
	"github.com/rowanmaas/veriflow/internal/testutil"
)

type testRepos struct {
	parties      *repository.SQLitePartyRepo
	compliance   *repository.SQLiteComplianceInfoRepo
	projects     *repository.SQLiteProjectRepo
	tasks        *repository.SQLiteTaskRepo
	timesheets   *repository.SQLiteTimesheetRepo
	transactions *repository.SQLiteTransactionRepo
	links        *repository.SQLiteLinkRepo
	uow          db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		parties:      repository.NewSQLitePartyRepo(database),
		compliance:   repository.NewSQLiteComplianceInfoRepo(database),
		projects:     repository.NewSQLiteProjectRepo(database),
		tasks:        repository.NewSQLiteTaskRepo(database),
		timesheets:   repository.NewSQLiteTimesheetRepo(database),
		transactions: repository.NewSQLiteTransactionRepo(database),
		links:        repository.NewSQLiteLinkRepo(database),
		uow:          testutil.NewTestUoW(database),
	}
}
