package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a hunt participant
type Player struct {
	ID           PlayerID
	Name         string // display name, upper-case normalized, unique
	RegisteredAt time.Time
}

// Completion records a player's final result. Written exactly once, at the
// moment all stages become complete, and immutable thereafter.
type Completion struct {
	PlayerID    PlayerID
	CompletedAt time.Time
	ElapsedMS   int64
	Score       int
}

// LeaderboardEntry is the read projection of a completed player
type LeaderboardEntry struct {
	Name        string
	ElapsedMS   int64
	Score       int
	CompletedAt time.Time
}
