package cli

import (
	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Submit a hunt completion and receive the score",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayerID(playerID)
			if err != nil {
				return err
			}

			req := map[string]string{"player_id": id}
			var result CompletionResult

			if err := client.Post("/api/v1/completions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (defaults to cached player)")

	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the completion leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry

			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
