package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerState:
		o.printPlayerState(v)
	case CheckAnswerResult:
		o.printCheckAnswerResult(v)
	case AccessCodeResult:
		o.printAccessCodeResult(v)
	case CompletionResult:
		o.printCompletionResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case []StageLetter:
		o.printStageLetters(v)
	case GameConfig:
		o.printGameConfig(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayerState response type (matches API)
type PlayerState struct {
	PlayerID        string `json:"player_id"`
	Name            string `json:"name"`
	CompletedStages []int  `json:"completed_stages"`
	IsComplete      bool   `json:"is_complete"`
}

// CheckAnswerResult response type
type CheckAnswerResult struct {
	Correct          bool `json:"correct"`
	AlreadyCompleted bool `json:"already_completed,omitempty"`
}

// AccessCodeResult response type
type AccessCodeResult struct {
	Valid bool `json:"valid"`
}

// CompletionResult response type
type CompletionResult struct {
	Success   bool   `json:"success"`
	Score     *int   `json:"score,omitempty"`
	ElapsedMS *int64 `json:"elapsed_ms,omitempty"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Name        string    `json:"name"`
	ElapsedMS   int64     `json:"elapsed_ms"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// StageLetter response type
type StageLetter struct {
	StageID int    `json:"stage_id"`
	Letter  string `json:"letter"`
}

// GameConfig response type
type GameConfig struct {
	GameOpenTime        time.Time `json:"game_open_time"`
	MaxPoints           int       `json:"max_points"`
	PointDecayPerMinute int       `json:"point_decay_per_minute"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayerState(s PlayerState) {
	fmt.Printf("Player: %s (%s)\n", s.Name, s.PlayerID)
	if len(s.CompletedStages) == 0 {
		fmt.Println("Completed Stages: none")
	} else {
		stages := make([]string, len(s.CompletedStages))
		for i, id := range s.CompletedStages {
			stages[i] = strconv.Itoa(id)
		}
		fmt.Printf("Completed Stages: %s\n", strings.Join(stages, ", "))
	}
	completeStr := "no"
	if s.IsComplete {
		completeStr = "yes"
	}
	fmt.Printf("Hunt Complete: %s\n", completeStr)
}

func (o *Output) printCheckAnswerResult(r CheckAnswerResult) {
	if r.Correct {
		if r.AlreadyCompleted {
			fmt.Println("Correct (stage was already completed)")
		} else {
			fmt.Println("Correct!")
		}
	} else {
		fmt.Println("Incorrect")
	}
}

func (o *Output) printAccessCodeResult(r AccessCodeResult) {
	if r.Valid {
		fmt.Println("Access granted")
	} else {
		fmt.Println("Access denied")
	}
}

func (o *Output) printCompletionResult(r CompletionResult) {
	if !r.Success {
		fmt.Println("Completion not recorded")
		return
	}
	fmt.Println("Hunt complete!")
	if r.Score != nil {
		fmt.Printf("Score: %d\n", *r.Score)
	}
	if r.ElapsedMS != nil {
		fmt.Printf("Elapsed: %s\n", formatElapsed(*r.ElapsedMS))
	}
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No completions yet")
		return
	}
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %8d pts  %s\n", i+1, e.Name, e.Score, formatElapsed(e.ElapsedMS))
	}
}

func (o *Output) printStageLetters(letters []StageLetter) {
	if len(letters) == 0 {
		fmt.Println("No letters collected yet")
		return
	}
	for _, l := range letters {
		fmt.Printf("Stage %d: %s\n", l.StageID, l.Letter)
	}
}

func (o *Output) printGameConfig(c GameConfig) {
	fmt.Printf("Game Open Time: %s\n", c.GameOpenTime.Format(time.RFC3339))
	fmt.Printf("Max Points: %d\n", c.MaxPoints)
	fmt.Printf("Point Decay Per Minute: %d\n", c.PointDecayPerMinute)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func formatElapsed(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return d.Truncate(time.Second).String()
}
