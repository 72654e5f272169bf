package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Service holds the stage definitions for the running event.
//
// Definitions carry the expected answers and access codes, so they live only
// on the server: nothing in this package is ever serialized to a client.
type Service struct {
	storage storage.Storage

	mu     sync.RWMutex
	defs   map[model.StageID]model.StageDefinition
	order  []model.StageID
	loaded bool
}

// New creates a new stages service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
		defs:    make(map[model.StageID]model.StageDefinition),
	}
}

// LoadFromStorage loads stage definitions from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	defs, err := s.storage.GetStages(ctx)
	if err != nil {
		return err
	}
	return s.loadDefs(defs)
}

// LoadFromFile loads stage definitions from a JSON file and persists them to
// storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var defs []model.StageDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("parsing stage file %s: %w", path, err)
	}

	if err := s.storage.SaveStages(ctx, defs); err != nil {
		return err
	}

	return s.loadDefs(defs)
}

// LoadStages directly loads stage definitions (useful for testing)
func (s *Service) LoadStages(defs []model.StageDefinition) error {
	return s.loadDefs(defs)
}

func (s *Service) loadDefs(defs []model.StageDefinition) error {
	if err := validate(defs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.defs = make(map[model.StageID]model.StageDefinition, len(defs))
	s.order = make([]model.StageID, 0, len(defs))
	for _, def := range defs {
		s.defs[def.ID] = def
		s.order = append(s.order, def.ID)
	}
	sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })
	s.loaded = true
	return nil
}

func validate(defs []model.StageDefinition) error {
	if len(defs) != model.StageCount {
		return fmt.Errorf("expected %d stages, got %d", model.StageCount, len(defs))
	}

	seen := make(map[model.StageID]struct{}, len(defs))
	for _, def := range defs {
		if def.ID < 1 || def.ID > model.StageCount {
			return fmt.Errorf("stage id %d out of range", def.ID)
		}
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("duplicate stage id %d", def.ID)
		}
		seen[def.ID] = struct{}{}

		switch def.Type {
		case model.StageTypeCode, model.StageTypeCipher, model.StageTypeRiddle:
			if len(def.Answers) == 0 {
				return fmt.Errorf("stage %d (%s) has no answers", def.ID, def.Type)
			}
		case model.StageTypeMemory:
			if len(def.Sequence) == 0 {
				return fmt.Errorf("stage %d (memory) has no sequence", def.ID)
			}
		case model.StageTypePuzzle:
			// Completion is proven by the client sentinel; nothing to configure
		case model.StageTypeFinal:
			if def.ID != model.StageCount {
				return fmt.Errorf("final stage must be stage %d", model.StageCount)
			}
		default:
			return fmt.Errorf("stage %d has unknown type %q", def.ID, def.Type)
		}
	}
	return nil
}

// Get returns the definition for a stage id
func (s *Service) Get(id model.StageID) (model.StageDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return model.StageDefinition{}, model.ErrStagesNotLoaded
	}
	def, ok := s.defs[id]
	if !ok {
		return model.StageDefinition{}, model.ErrUnknownStage
	}
	return def, nil
}

// All returns every stage definition in id order
func (s *Service) All() []model.StageDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	defs := make([]model.StageDefinition, 0, len(s.order))
	for _, id := range s.order {
		defs = append(defs, s.defs[id])
	}
	return defs
}

// IsLoaded returns whether stage definitions have been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// FinalAnswer derives the final stage's expected answer from a player's
// recorded first letters: the concatenation, in stage-id order, of the
// letters of the letter-bearing stages. Memory and puzzle stages record no
// letter and contribute nothing.
func (s *Service) FinalAnswer(letters map[model.StageID]string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	for _, id := range s.order {
		def := s.defs[id]
		if def.Type == model.StageTypeFinal || !def.HasLetter() {
			continue
		}
		if letter, ok := letters[id]; ok {
			b.WriteString(letter)
		}
	}
	return b.String()
}
