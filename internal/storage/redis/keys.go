package redis

import (
	"fmt"

	"github.com/oridashi/scrollhunt/internal/model"
)

// Key prefix for all hunt-related data
const keyPrefix = "scrollhunt"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// nameIndexKey returns the Redis key for the name -> player_id index
func nameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:name:%s", keyPrefix, name)
}

// completedStagesKey returns the Redis key for a player's completed-stage SET
func completedStagesKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:completed:%s", keyPrefix, id)
}

// firstLettersKey returns the Redis key for a player's first-letter HASH
func firstLettersKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:letters:%s", keyPrefix, id)
}

// completionKey returns the Redis key for a player's Completion record
func completionKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:completion:%s", keyPrefix, id)
}

// completionOrderKey returns the Redis key for the LIST of completed players
// in completion order
func completionOrderKey() string {
	return fmt.Sprintf("%s:idx:completion_order", keyPrefix)
}

// gameConfigKey returns the Redis key for the GameConfig
func gameConfigKey() string {
	return fmt.Sprintf("%s:config", keyPrefix)
}

// stagesKey returns the Redis key for the stage definitions
func stagesKey() string {
	return fmt.Sprintf("%s:stages", keyPrefix)
}
