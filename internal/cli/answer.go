package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAnswerCmd() *cobra.Command {
	var playerID string
	var stageID int
	var answer string

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Submit a stage answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayerID(playerID)
			if err != nil {
				return err
			}
			if stageID == 0 {
				return fmt.Errorf("--stage is required")
			}

			req := map[string]any{
				"player_id": id,
				"stage_id":  stageID,
				"answer":    answer,
			}
			var result CheckAnswerResult

			if err := client.Post("/api/v1/answers/check", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (defaults to cached player)")
	cmd.Flags().IntVar(&stageID, "stage", 0, "Stage ID (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer text")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func newAccessCmd() *cobra.Command {
	var playerID string
	var stageID int
	var code string

	cmd := &cobra.Command{
		Use:   "access",
		Short: "Check a stage access code",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlayerID(playerID)
			if err != nil {
				return err
			}
			if stageID == 0 {
				return fmt.Errorf("--stage is required")
			}

			req := map[string]any{
				"player_id": id,
				"stage_id":  stageID,
				"code":      code,
			}
			var result AccessCodeResult

			if err := client.Post("/api/v1/access-codes/check", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (defaults to cached player)")
	cmd.Flags().IntVar(&stageID, "stage", 0, "Stage ID (required)")
	cmd.Flags().StringVar(&code, "code", "", "Access code")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}
