package storage

import (
	"context"

	"github.com/oridashi/scrollhunt/internal/model"
)

// Storage defines the interface for data persistence.
//
// AddCompletedStage and RecordCompletion are the two mutation points that
// must stay safe under concurrent duplicate submissions (same player, two
// tabs): both are atomic add-if-absent operations, never read-modify-write.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// GetPlayerIDByName resolves a normalized name to its owning player id,
	// or model.ErrPlayerNotFound if the name is unclaimed. Resume paths use
	// this so that resuming never writes.
	GetPlayerIDByName(ctx context.Context, name string) (model.PlayerID, error)

	// ClaimPlayerName atomically claims a normalized name for the given
	// player id. If the name is already claimed it returns the existing
	// owner's id and created=false; concurrent registrations of one name
	// converge on a single player.
	ClaimPlayerName(ctx context.Context, name string, id model.PlayerID) (model.PlayerID, bool, error)

	// Stage progress operations
	//
	// AddCompletedStage adds a stage to the player's completed set and, on
	// first success only, records the stage's first letter (empty letter
	// records nothing). Returns added=false if the stage was already
	// complete, leaving all recorded state untouched.
	AddCompletedStage(ctx context.Context, id model.PlayerID, stage model.StageID, letter string) (bool, error)
	GetCompletedStages(ctx context.Context, id model.PlayerID) ([]model.StageID, error)
	GetFirstLetters(ctx context.Context, id model.PlayerID) (map[model.StageID]string, error)

	// Completion operations
	//
	// RecordCompletion is an atomic check-and-set: it persists the record
	// only if the player has no completion yet, returning recorded=false
	// otherwise. A player's score and elapsed time never change once set.
	RecordCompletion(ctx context.Context, completion *model.Completion) (bool, error)
	GetCompletion(ctx context.Context, id model.PlayerID) (*model.Completion, error)
	// ListCompletions returns all completions in completion order
	ListCompletions(ctx context.Context) ([]*model.Completion, error)

	// Game config operations
	SaveGameConfig(ctx context.Context, cfg *model.GameConfig) error
	GetGameConfig(ctx context.Context) (*model.GameConfig, error)

	// Stage definition operations
	SaveStages(ctx context.Context, defs []model.StageDefinition) error
	GetStages(ctx context.Context) ([]model.StageDefinition, error)
}
