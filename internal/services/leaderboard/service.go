package leaderboard

import (
	"context"
	"sort"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Service produces the ranked view of completed players
type Service struct {
	storage storage.Storage
}

// New creates a new leaderboard service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Get returns all completed players ascending by elapsed time, fastest first.
// Ties keep completion order: the stable sort runs over the completion-ordered
// list, so the first to complete ranks higher.
func (s *Service) Get(ctx context.Context) ([]model.LeaderboardEntry, error) {
	completions, err := s.storage.ListCompletions(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(completions))
	for _, c := range completions {
		player, err := s.storage.GetPlayer(ctx, c.PlayerID)
		if err != nil {
			// A completion without a player record is unreadable; skip it
			// rather than failing the whole board
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			Name:        player.Name,
			ElapsedMS:   c.ElapsedMS,
			Score:       c.Score,
			CompletedAt: c.CompletedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ElapsedMS < entries[j].ElapsedMS
	})
	return entries, nil
}
