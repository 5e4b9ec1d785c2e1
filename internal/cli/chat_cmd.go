package cli

import "github.com/spf13/cobra"

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Run the calculator conversation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}
}
