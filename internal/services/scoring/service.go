package scoring

import (
	"context"
	"errors"
	"time"

	"github.com/oridashi/scrollhunt/internal/dependencies/clock"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Service computes and records final scores
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new scoring service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// SubmitCompletion finalizes a player's run. It requires every stage to be
// complete, computes the time-decayed score from the shared game-open time,
// and records the result exactly once: repeated calls return the original
// record byte for byte, so elapsed time never drifts across page reloads.
func (s *Service) SubmitCompletion(ctx context.Context, playerID model.PlayerID) (*model.Completion, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	// Idempotent resubmission: return the prior record untouched
	existing, err := s.storage.GetCompletion(ctx, playerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrCompletionNotFound) {
		return nil, err
	}

	completed, err := s.storage.GetCompletedStages(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !model.IsCompleteSet(completed) {
		return nil, model.ErrIncomplete
	}

	cfg, err := s.storage.GetGameConfig(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	elapsed := now.Sub(cfg.GameOpenTime)
	if elapsed < 0 {
		elapsed = 0
	}

	completion := &model.Completion{
		PlayerID:    playerID,
		CompletedAt: now,
		ElapsedMS:   elapsed.Milliseconds(),
		Score:       Score(elapsed, cfg),
	}

	recorded, err := s.storage.RecordCompletion(ctx, completion)
	if err != nil {
		return nil, err
	}
	if !recorded {
		// Lost a concurrent race; the winner's record is authoritative
		return s.storage.GetCompletion(ctx, playerID)
	}
	return completion, nil
}

// Score computes the time-decayed score: MaxPoints minus the per-minute decay
// for each whole elapsed minute, clamped to [0, MaxPoints]. Deterministic in
// (elapsed, config) and monotonically non-increasing in elapsed.
func Score(elapsed time.Duration, cfg *model.GameConfig) int {
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := int(elapsed / time.Minute)
	score := cfg.MaxPoints - minutes*cfg.PointDecayPerMinute
	if score < 0 {
		return 0
	}
	if score > cfg.MaxPoints {
		return cfg.MaxPoints
	}
	return score
}
