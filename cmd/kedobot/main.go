package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avoevodin/kedobot/internal/cli"
	"github.com/avoevodin/kedobot/internal/config"
	"github.com/avoevodin/kedobot/internal/crm"
	"github.com/avoevodin/kedobot/internal/db"
	"github.com/avoevodin/kedobot/internal/repository"
	"github.com/avoevodin/kedobot/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stdoutSender prints outbound messages. The terminal build has no
// messenger transport, so deliveries land in the operator's console.
type stdoutSender struct{}

func (stdoutSender) Send(_ context.Context, chatID int64, text string) error {
	fmt.Printf("-> %d: %s\n", chatID, text)
	return nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)
	rateRepo := repository.NewSQLiteRateRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire CRM client: real webhook when configured, logging otherwise
	crmCfg := crm.LoadConfig()
	var crmClient crm.Client = crm.NewLogClient()
	if crmCfg.Enabled {
		var observer crm.Observer = crm.NoopObserver{}
		if crmCfg.LogCalls {
			observer = crm.NewLogObserver(os.Stderr)
		}
		crmClient = crm.NewBitrixClient(crmCfg, observer)
	}

	sender := stdoutSender{}

	calcSvc := service.NewCalculatorService(rateRepo, submissionRepo, uow, cfg.WorkingMinutesPerMonth)
	if cfg.NotifyChatID != 0 {
		calcSvc.WithNewUserNotice(sender, cfg.NotifyChatID)
	}

	app := &cli.App{
		Calculator: calcSvc,
		Leads:      service.NewLeadService(crmClient, submissionRepo),
		Stats:      service.NewStatsService(submissionRepo),
		Announce:   service.NewAnnounceService(submissionRepo, sender),
		Rates:      service.NewRateService(rateRepo),
	}

	// Detect interactive terminal for the chat-by-default entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
