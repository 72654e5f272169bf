package request

import "time"

// RegisterRequest is the request body for registering or resuming a player
type RegisterRequest struct {
	Name string `json:"name"`
}

// CheckAnswerRequest is the request body for checking a stage answer
type CheckAnswerRequest struct {
	PlayerID string `json:"player_id"`
	StageID  int    `json:"stage_id"`
	Answer   string `json:"answer"`
}

// CheckAccessCodeRequest is the request body for checking a stage's gate code
type CheckAccessCodeRequest struct {
	PlayerID string `json:"player_id"`
	StageID  int    `json:"stage_id"`
	Code     string `json:"code"`
}

// SubmitCompletionRequest is the request body for submitting completion
type SubmitCompletionRequest struct {
	PlayerID string `json:"player_id"`
}

// UpdateConfigRequest is the request body for the operator config update
type UpdateConfigRequest struct {
	GameOpenTime        time.Time `json:"game_open_time"`
	MaxPoints           int       `json:"max_points"`
	PointDecayPerMinute int       `json:"point_decay_per_minute"`
}
