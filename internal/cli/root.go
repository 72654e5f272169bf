package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "huntctl",
		Short: "CLI tool for the scavenger hunt API",
		Long: `huntctl is a CLI tool for interacting with the scavenger hunt JSON API.

It supports player registration, answer and access code checks, hunt
completion, the leaderboard, and operator config management. The registered
player identity is cached locally so follow-up commands can omit --player.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load cached player identity if not provided via flag/env
			if err := cfg.LoadPlayer(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.AdminKey)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCROLLHUNT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Operator key (env: SCROLLHUNT_ADMIN_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerFile, "player-file", cfg.PlayerFile, "Player cache file path (env: SCROLLHUNT_PLAYER_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newAnswerCmd())
	rootCmd.AddCommand(newAccessCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
