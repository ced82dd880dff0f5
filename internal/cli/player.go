package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player identity commands",
	}

	cmd.AddCommand(newGuestCmd())

	return cmd
}

func newGuestCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "guest <display-name>",
		Short: "Create a guest identity and save the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"display_name": args[0]}

			var result AuthResult
			if err := client.Post("/api/v1/players/guest", req, &result); err != nil {
				return err
			}

			if !noSave {
				if err := cfg.SaveToken(result.SessionToken); err != nil {
					return err
				}
				client.SetToken(result.SessionToken)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Don't save the token to the token file")

	return cmd
}
