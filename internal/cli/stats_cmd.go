package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avoevodin/kedobot/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show audience statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Stats.Overview(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(overview))
			return nil
		},
	}
}
