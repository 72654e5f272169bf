package verifier

import (
	"context"
	"strings"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/stages"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Result is the outcome of an answer check. A wrong answer is Correct=false,
// never an error.
type Result struct {
	Correct          bool
	AlreadyCompleted bool
}

// StageLetter pairs a completed stage with its recorded first letter
type StageLetter struct {
	StageID model.StageID
	Letter  string
}

// Service validates submitted answers and records stage completions
type Service struct {
	storage storage.Storage
	stages  *stages.Service
}

// New creates a new verifier service
func New(storage storage.Storage, stages *stages.Service) *Service {
	return &Service{
		storage: storage,
		stages:  stages,
	}
}

// normalize folds a submission into comparison form. The client upper-cases
// before sending, but the server never trusts that.
func normalize(answer string) string {
	return strings.ToUpper(strings.TrimSpace(answer))
}

// CheckAnswer validates an answer for a stage. On first success the stage is
// added to the player's completed set and its first letter recorded; on a
// repeat success nothing mutates and AlreadyCompleted is set.
func (s *Service) CheckAnswer(ctx context.Context, playerID model.PlayerID, stageID model.StageID, answer string) (*Result, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	def, err := s.stages.Get(stageID)
	if err != nil {
		return nil, err
	}

	submitted := normalize(answer)

	correct, err := s.matches(ctx, playerID, def, submitted)
	if err != nil {
		return nil, err
	}
	if !correct {
		return &Result{Correct: false}, nil
	}

	added, err := s.storage.AddCompletedStage(ctx, playerID, stageID, firstLetter(def, submitted))
	if err != nil {
		return nil, err
	}

	return &Result{Correct: true, AlreadyCompleted: !added}, nil
}

func (s *Service) matches(ctx context.Context, playerID model.PlayerID, def model.StageDefinition, submitted string) (bool, error) {
	switch def.Type {
	case model.StageTypeCode, model.StageTypeCipher, model.StageTypeRiddle:
		for _, expected := range def.Answers {
			if submitted == normalize(expected) {
				return true, nil
			}
		}
		return false, nil

	case model.StageTypeMemory:
		return submitted == model.JoinSequence(def.Sequence), nil

	case model.StageTypePuzzle:
		// The solved-state check runs client-side; the sentinel is accepted
		// as proof of completion
		return submitted == model.PuzzleCompletedSentinel, nil

	case model.StageTypeFinal:
		letters, err := s.storage.GetFirstLetters(ctx, playerID)
		if err != nil {
			return false, err
		}
		expected := s.stages.FinalAnswer(letters)
		return expected != "" && submitted == expected, nil

	default:
		return false, model.ErrUnknownStage
	}
}

// firstLetter returns the letter a successful submission contributes to the
// final code, or "" for stage types that carry none
func firstLetter(def model.StageDefinition, submitted string) string {
	if !def.HasLetter() || submitted == "" {
		return ""
	}
	return string([]rune(submitted)[0])
}

// CheckAccessCode validates a stage's gate code. Stages without a configured
// access code are ungated. A wrong code is valid=false, not an error.
func (s *Service) CheckAccessCode(ctx context.Context, playerID model.PlayerID, stageID model.StageID, code string) (bool, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return false, err
	}

	def, err := s.stages.Get(stageID)
	if err != nil {
		return false, err
	}

	if def.AccessCode == "" {
		return true, nil
	}
	return normalize(code) == normalize(def.AccessCode), nil
}

// FirstLetters returns the recorded first letters for a player's completed
// stages, in stage-id order. Used by the final stage's display only; it never
// reveals letters for stages the player has not solved.
func (s *Service) FirstLetters(ctx context.Context, playerID model.PlayerID) ([]StageLetter, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	letters, err := s.storage.GetFirstLetters(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result := make([]StageLetter, 0, len(letters))
	for _, id := range model.AllStageIDs() {
		if letter, ok := letters[id]; ok {
			result = append(result, StageLetter{StageID: id, Letter: letter})
		}
	}
	return result, nil
}
