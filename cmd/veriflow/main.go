package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rowanmaas/veriflow/internal/cli"
	"github.com/rowanmaas/veriflow/internal/config"
	"github.com/rowanmaas/veriflow/internal/db"
	"github.com/rowanmaas/veriflow/internal/repository"
	"github.com/rowanmaas/veriflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		// lipgloss and termenv honor NO_COLOR.
		os.Setenv("NO_COLOR", "1")
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	partyRepo := repository.NewSQLitePartyRepo(database)
	complianceRepo := repository.NewSQLiteComplianceInfoRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	timesheetRepo := repository.NewSQLiteTimesheetRepo(database)
	transactionRepo := repository.NewSQLiteTransactionRepo(database)
	linkRepo := repository.NewSQLiteLinkRepo(database)

	// Wire unit of work for document saves with child tables
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case telemetry to stderr
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	licenseSvc := service.NewLicenseService(partyRepo, complianceRepo, observers...)

	app := &cli.App{
		Licenses:     licenseSvc,
		Parties:      service.NewPartyService(partyRepo, complianceRepo, uow),
		Compliance:   service.NewComplianceInfoService(complianceRepo),
		Billing:      service.NewBillingService(projectRepo, taskRepo, timesheetRepo, observers...),
		Links:        service.NewLinkService(linkRepo, observers...),
		Projects:     service.NewProjectService(projectRepo),
		Tasks:        service.NewTaskService(taskRepo, projectRepo),
		Timesheets:   service.NewTimesheetService(timesheetRepo, uow),
		Transactions: service.NewTransactionService(transactionRepo, licenseSvc),
	}

	// Detect interactive terminal for form and viewer entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
