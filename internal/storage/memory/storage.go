package memory

import (
	"context"
	"sync"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players         map[model.PlayerID]*model.Player
	nameIndex       map[string]model.PlayerID
	completedStages map[model.PlayerID]map[model.StageID]struct{}
	firstLetters    map[model.PlayerID]map[model.StageID]string
	completions     map[model.PlayerID]*model.Completion
	completionOrder []model.PlayerID
	gameConfig      *model.GameConfig
	stages          []model.StageDefinition
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:         make(map[model.PlayerID]*model.Player),
		nameIndex:       make(map[string]model.PlayerID),
		completedStages: make(map[model.PlayerID]map[model.StageID]struct{}),
		firstLetters:    make(map[model.PlayerID]map[model.StageID]string),
		completions:     make(map[model.PlayerID]*model.Completion),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayerIDByName(ctx context.Context, name string) (model.PlayerID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return "", model.ErrPlayerNotFound
	}
	return id, nil
}

func (s *Storage) ClaimPlayerName(ctx context.Context, name string, id model.PlayerID) (model.PlayerID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.nameIndex[name]; ok {
		return existing, false, nil
	}
	s.nameIndex[name] = id
	return id, true, nil
}

// Stage progress operations

func (s *Storage) AddCompletedStage(ctx context.Context, id model.PlayerID, stage model.StageID, letter string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.completedStages[id]
	if !ok {
		set = make(map[model.StageID]struct{})
		s.completedStages[id] = set
	}
	if _, done := set[stage]; done {
		return false, nil
	}
	set[stage] = struct{}{}

	if letter != "" {
		letters, ok := s.firstLetters[id]
		if !ok {
			letters = make(map[model.StageID]string)
			s.firstLetters[id] = letters
		}
		letters[stage] = letter
	}
	return true, nil
}

func (s *Storage) GetCompletedStages(ctx context.Context, id model.PlayerID) ([]model.StageID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.completedStages[id]
	ids := make([]model.StageID, 0, len(set))
	for stage := range set {
		ids = append(ids, stage)
	}
	model.SortStageIDs(ids)
	return ids, nil
}

func (s *Storage) GetFirstLetters(ctx context.Context, id model.PlayerID) (map[model.StageID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	letters := make(map[model.StageID]string, len(s.firstLetters[id]))
	for stage, letter := range s.firstLetters[id] {
		letters[stage] = letter
	}
	return letters, nil
}

// Completion operations

func (s *Storage) RecordCompletion(ctx context.Context, completion *model.Completion) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.completions[completion.PlayerID]; ok {
		return false, nil
	}
	s.completions[completion.PlayerID] = completion
	s.completionOrder = append(s.completionOrder, completion.PlayerID)
	return true, nil
}

func (s *Storage) GetCompletion(ctx context.Context, id model.PlayerID) (*model.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	completion, ok := s.completions[id]
	if !ok {
		return nil, model.ErrCompletionNotFound
	}
	return completion, nil
}

func (s *Storage) ListCompletions(ctx context.Context) ([]*model.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	completions := make([]*model.Completion, 0, len(s.completionOrder))
	for _, id := range s.completionOrder {
		if c, ok := s.completions[id]; ok {
			completions = append(completions, c)
		}
	}
	return completions, nil
}

// Game config operations

func (s *Storage) SaveGameConfig(ctx context.Context, cfg *model.GameConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *cfg
	s.gameConfig = &copied
	return nil
}

func (s *Storage) GetGameConfig(ctx context.Context) (*model.GameConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gameConfig == nil {
		return nil, model.ErrConfigNotSet
	}
	copied := *s.gameConfig
	return &copied, nil
}

// Stage definition operations

func (s *Storage) SaveStages(ctx context.Context, defs []model.StageDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stages = make([]model.StageDefinition, len(defs))
	copy(s.stages, defs)
	return nil
}

func (s *Storage) GetStages(ctx context.Context) ([]model.StageDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stages == nil {
		return nil, model.ErrStagesNotLoaded
	}
	defs := make([]model.StageDefinition, len(s.stages))
	copy(defs, s.stages)
	return defs, nil
}
