package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerStateCmd())
	cmd.AddCommand(newPlayerLettersCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a player (or resume an existing one by name)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result PlayerState

			if err := client.Post("/api/v1/players/register", req, &result); err != nil {
				return err
			}

			// Cache the identity for follow-up commands
			if err := cfg.SavePlayer(result.PlayerID, result.Name); err != nil {
				return fmt.Errorf("failed to save player: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerStateCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show player progression state",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayerID(playerID)
			if err != nil {
				return err
			}

			var result PlayerState
			if err := client.Get("/api/v1/players/"+id, &result); err != nil {
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

func newPlayerLettersCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Show collected first letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayerID(playerID)
			if err != nil {
				return err
			}

			var result []StageLetter
			if err := client.Get("/api/v1/players/"+id+"/first-letters", &result); err != nil {
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

// resolvePlayerID returns the flag value or the cached player identity
func resolvePlayerID(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.PlayerID != "" {
		return cfg.PlayerID, nil
	}
	return "", fmt.Errorf("no player registered: run 'huntctl player register' or pass --player")
}
