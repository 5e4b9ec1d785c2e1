package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoevodin/kedobot/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a user's stored calculations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := app.Calculator.History(context.Background(), userID)
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Расчётов нет.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(subs))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", localUserID, "User ID to show history for")

	return cmd
}
