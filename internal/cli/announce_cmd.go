package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAnnounceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "announce <text>",
		Short: "Broadcast a message to every known user",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			n, err := app.Announce.Broadcast(context.Background(), text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Доставлено: %d\n", n)
			return nil
		},
	}
}
