package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oridashi/scrollhunt/internal/services/operator"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Game configuration commands",
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigHashKeyCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current game configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameConfig

			if err := client.Get("/api/v1/config", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var openTime string
	var maxPoints int
	var decay int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the game configuration (operator only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.AdminKey == "" {
				return fmt.Errorf("--admin-key is required for config set")
			}

			parsed, err := time.Parse(time.RFC3339, openTime)
			if err != nil {
				return fmt.Errorf("invalid --open-time: %w", err)
			}

			req := map[string]any{
				"game_open_time":         parsed,
				"max_points":             maxPoints,
				"point_decay_per_minute": decay,
			}

			if err := client.Put("/api/v1/admin/config", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Config updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&openTime, "open-time", "", "Game open time, RFC 3339 (required)")
	cmd.Flags().IntVar(&maxPoints, "max-points", 1000, "Maximum score")
	cmd.Flags().IntVar(&decay, "decay", 10, "Points lost per elapsed minute")
	_ = cmd.MarkFlagRequired("open-time")

	return cmd
}

func newConfigHashKeyCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "hash-key",
		Short: "Hash an operator key for OPERATOR_KEY_HASH",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := operator.HashKey(key)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Operator key to hash (required)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
