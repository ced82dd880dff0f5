package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLobbyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lobby",
		Short: "Lobby commands",
	}

	cmd.AddCommand(newLobbyCreateCmd())
	cmd.AddCommand(newLobbyGetCmd())
	cmd.AddCommand(newLobbyJoinCmd())
	cmd.AddCommand(newLobbyRejoinCmd())
	cmd.AddCommand(newLobbyLeaveCmd())
	cmd.AddCommand(newLobbyReadyCmd())
	cmd.AddCommand(newLobbySettingsCmd())
	cmd.AddCommand(newLobbyReactCmd())

	return cmd
}

func newLobbyCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new lobby",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Lobby
			if err := client.Post("/api/v1/lobbies", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLobbyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get lobby details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Lobby
			if err := client.Get(fmt.Sprintf("/api/v1/lobbies/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLobbyJoinCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "join <code>",
		Short: "Join a lobby",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req any
			if displayName != "" {
				req = map[string]string{"display_name": displayName}
			}

			var result Lobby
			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/join", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Join under a different display name")

	return cmd
}

func newLobbyRejoinCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "rejoin <code>",
		Short: "Rejoin a lobby after disconnecting, reclaiming your seat by display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req any
			if displayName != "" {
				req = map[string]string{"display_name": displayName}
			}

			var result RejoinResult
			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/rejoin", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name of the seat to reclaim")

	return cmd
}

func newLobbyLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <code>",
		Short: "Leave a lobby",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/leave", args[0]), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Left lobby " + args[0])
			return nil
		},
	}
}

func newLobbyReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready <code> <true|false>",
		Short: "Set your ready state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ready, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid ready value %q", args[1])
			}

			req := map[string]bool{"ready": ready}
			if err := client.Put(fmt.Sprintf("/api/v1/lobbies/%s/ready", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if ready {
				out.PrintMessage("Ready")
			} else {
				out.PrintMessage("Not ready")
			}
			return nil
		},
	}
}

func newLobbySettingsCmd() *cobra.Command {
	var rounds, roundTime int

	cmd := &cobra.Command{
		Use:   "settings <code>",
		Short: "Update lobby settings (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{
				"rounds":             rounds,
				"round_time_seconds": roundTime,
			}

			var result GameSettings
			if err := client.Patch(fmt.Sprintf("/api/v1/lobbies/%s/settings", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 4, "Number of rounds")
	cmd.Flags().IntVar(&roundTime, "round-time", 60, "Seconds per round")

	return cmd
}

func newLobbyReactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "react <code> <icon>",
		Short: "Send a reaction to the lobby",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"icon": args[1]}
			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/reactions", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Sent " + args[1])
			return nil
		},
	}
}
