package cli

import (
	"github.com/spf13/cobra"

	"github.com/avoevodin/kedobot/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Calculator service.CalculatorService
	Leads      service.LeadService
	Stats      service.StatsService
	Announce   service.AnnounceService
	Rates      service.RateService

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the chat only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "kedobot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kedobot",
		Short: "Paper vs digital HR document flow cost calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChat(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
		newRatesCmd(app),
		newAnnounceCmd(app),
	)

	return root
}
