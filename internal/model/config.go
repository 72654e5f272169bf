package model

import "time"

// GameConfig holds the shared game parameters. Set once by an operator before
// players register; read-only afterwards.
type GameConfig struct {
	// GameOpenTime is the universal zero point for elapsed-time computation.
	// Every player's elapsed time is measured from here, not from their own
	// registration time.
	GameOpenTime time.Time

	MaxPoints           int
	PointDecayPerMinute int
}
