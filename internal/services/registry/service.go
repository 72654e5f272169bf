package registry

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/oridashi/scrollhunt/internal/dependencies/clock"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Name length bounds, enforced server-side regardless of client validation
const (
	MinNameLength = 2
	MaxNameLength = 20
)

// PlayerState is the registry's view of a player, as returned to clients
type PlayerState struct {
	PlayerID        model.PlayerID
	Name            string
	CompletedStages []model.StageID
	IsComplete      bool
}

// Service creates and resumes player identities
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new registry service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// NormalizeName trims and upper-cases a display name
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// RegisterOrResume registers a player by name, or resumes the existing player
// if the name is already taken. Registration is idempotent: submitting the
// same name always converges on the same player id, which is what lets the
// client restore a session from a locally cached {player_id, name} pair.
//
// Resume is a pure read: only an unclaimed name writes anything.
func (s *Service) RegisterOrResume(ctx context.Context, name string) (*PlayerState, error) {
	normalized := NormalizeName(name)
	if n := utf8.RuneCountInString(normalized); n < MinNameLength || n > MaxNameLength {
		return nil, model.ErrInvalidName
	}

	ownerID, err := s.storage.GetPlayerIDByName(ctx, normalized)
	if err == nil {
		return s.GetState(ctx, ownerID)
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player := &model.Player{
		ID:           model.PlayerID(uuid.NewString()),
		Name:         normalized,
		RegisteredAt: s.clock.Now(),
	}

	// The record is written before the name is claimed: a record that loses
	// the claim race is unreachable, whereas a claimed name without a record
	// would be a half-created player. Only two registrations racing on a
	// fresh name can reach this path, so a lost claim is the sole way to
	// orphan a record.
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	ownerID, created, err := s.storage.ClaimPlayerName(ctx, normalized, player.ID)
	if err != nil {
		return nil, err
	}
	if created {
		return &PlayerState{
			PlayerID:        player.ID,
			Name:            normalized,
			CompletedStages: []model.StageID{},
			IsComplete:      false,
		}, nil
	}

	return s.GetState(ctx, ownerID)
}

// GetState returns the current state for a player id
func (s *Service) GetState(ctx context.Context, id model.PlayerID) (*PlayerState, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	completed, err := s.storage.GetCompletedStages(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PlayerState{
		PlayerID:        player.ID,
		Name:            player.Name,
		CompletedStages: completed,
		IsComplete:      model.IsCompleteSet(completed),
	}, nil
}
