package response

import (
	"time"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/registry"
	"github.com/oridashi/scrollhunt/internal/services/verifier"
)

// PlayerState is the registration/resume and state response
type PlayerState struct {
	PlayerID        string `json:"player_id"`
	Name            string `json:"name"`
	CompletedStages []int  `json:"completed_stages"`
	IsComplete      bool   `json:"is_complete"`
}

// PlayerStateFromModel converts a registry.PlayerState
func PlayerStateFromModel(s *registry.PlayerState) PlayerState {
	completed := make([]int, len(s.CompletedStages))
	for i, id := range s.CompletedStages {
		completed[i] = int(id)
	}
	return PlayerState{
		PlayerID:        string(s.PlayerID),
		Name:            s.Name,
		CompletedStages: completed,
		IsComplete:      s.IsComplete,
	}
}

// CheckAnswer is the answer verification response
type CheckAnswer struct {
	Correct          bool `json:"correct"`
	AlreadyCompleted bool `json:"already_completed,omitempty"`
}

// CheckAnswerFromResult converts a verifier.Result
func CheckAnswerFromResult(r *verifier.Result) CheckAnswer {
	return CheckAnswer{
		Correct:          r.Correct,
		AlreadyCompleted: r.AlreadyCompleted,
	}
}

// AccessCode is the access-code check response
type AccessCode struct {
	Valid bool `json:"valid"`
}

// Completion is the completion submission response
type Completion struct {
	Success   bool   `json:"success"`
	Score     *int   `json:"score,omitempty"`
	ElapsedMS *int64 `json:"elapsed_ms,omitempty"`
}

// CompletionFromModel converts a model.Completion
func CompletionFromModel(c *model.Completion) Completion {
	score := c.Score
	elapsed := c.ElapsedMS
	return Completion{
		Success:   true,
		Score:     &score,
		ElapsedMS: &elapsed,
	}
}

// LeaderboardEntry is one row of the leaderboard response
type LeaderboardEntry struct {
	Name        string    `json:"name"`
	ElapsedMS   int64     `json:"elapsed_ms"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// LeaderboardFromModel converts leaderboard entries
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	result := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		result[i] = LeaderboardEntry{
			Name:        e.Name,
			ElapsedMS:   e.ElapsedMS,
			Score:       e.Score,
			CompletedAt: e.CompletedAt,
		}
	}
	return result
}

// GameConfig is the public config response
type GameConfig struct {
	GameOpenTime        time.Time `json:"game_open_time"`
	MaxPoints           int       `json:"max_points"`
	PointDecayPerMinute int       `json:"point_decay_per_minute"`
}

// GameConfigFromModel converts a model.GameConfig
func GameConfigFromModel(c *model.GameConfig) GameConfig {
	return GameConfig{
		GameOpenTime:        c.GameOpenTime,
		MaxPoints:           c.MaxPoints,
		PointDecayPerMinute: c.PointDecayPerMinute,
	}
}

// StageLetter is one recorded first letter for the final stage display
type StageLetter struct {
	StageID int    `json:"stage_id"`
	Letter  string `json:"letter"`
}

// StageLettersFromModel converts verifier stage letters
func StageLettersFromModel(letters []verifier.StageLetter) []StageLetter {
	result := make([]StageLetter, len(letters))
	for i, l := range letters {
		result[i] = StageLetter{
			StageID: int(l.StageID),
			Letter:  l.Letter,
		}
	}
	return result
}
