package verifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/stages"
	"github.com/oridashi/scrollhunt/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	stages  *stages.Service
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.stages = stages.New(s.storage)
	s.service = New(s.storage, s.stages)
	s.ctx = context.Background()

	err := s.stages.LoadStages([]model.StageDefinition{
		{ID: 1, Type: model.StageTypeCode, Answers: []string{"KONOHA"}},
		{ID: 2, Type: model.StageTypeCipher, Answers: []string{"VILLAGE", "HIDDEN VILLAGE"}},
		{ID: 3, Type: model.StageTypeMemory, Sequence: []int{0, 3, 1, 4, 2, 5}, AccessCode: "ANBU"},
		{ID: 4, Type: model.StageTypeCode, Answers: []string{"SHARINGAN"}},
		{ID: 5, Type: model.StageTypePuzzle},
		{ID: 6, Type: model.StageTypeRiddle, Answers: []string{"HASHIRAMA"}},
		{ID: 7, Type: model.StageTypeFinal},
	})
	s.Require().NoError(err)

	err = s.storage.SavePlayer(s.ctx, &model.Player{
		ID:           "player-1",
		Name:         "ALICE",
		RegisteredAt: time.Now(),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) check(stageID model.StageID, answer string) *Result {
	result, err := s.service.CheckAnswer(s.ctx, "player-1", stageID, answer)
	s.Require().NoError(err)
	return result
}

// Code, cipher and riddle stages

func (s *ServiceSuite) TestCorrectCodeAnswer() {
	result := s.check(1, "KONOHA")
	s.True(result.Correct)
	s.False(result.AlreadyCompleted)
}

func (s *ServiceSuite) TestWrongAnswerIsNotAnError() {
	result := s.check(1, "SUNA")
	s.False(result.Correct)

	completed, err := s.storage.GetCompletedStages(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(completed)
}

func (s *ServiceSuite) TestAnswerNormalized() {
	result := s.check(1, "  konoha  ")
	s.True(result.Correct)
}

func (s *ServiceSuite) TestCipherAcceptsAnyListedAnswer() {
	s.True(s.check(2, "HIDDEN VILLAGE").Correct)
}

func (s *ServiceSuite) TestRiddleAnswer() {
	s.True(s.check(6, "hashirama").Correct)
}

func (s *ServiceSuite) TestRepeatSuccessAlreadyCompleted() {
	first := s.check(1, "KONOHA")
	s.True(first.Correct)
	s.False(first.AlreadyCompleted)

	second := s.check(1, "KONOHA")
	s.True(second.Correct)
	s.True(second.AlreadyCompleted)

	completed, err := s.storage.GetCompletedStages(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal([]model.StageID{1}, completed)
}

func (s *ServiceSuite) TestCorrectAnswerRecordsFirstLetter() {
	s.check(1, "KONOHA")

	letters, err := s.storage.GetFirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("K", letters[1])
}

// Memory stage

func (s *ServiceSuite) TestMemorySequenceAnswer() {
	s.True(s.check(3, "0,3,1,4,2,5").Correct)
}

func (s *ServiceSuite) TestMemoryWrongSequence() {
	s.False(s.check(3, "0,1,2,3,4,5").Correct)
}

func (s *ServiceSuite) TestMemoryRecordsNoLetter() {
	s.check(3, "0,3,1,4,2,5")

	letters, err := s.storage.GetFirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(letters)
}

// Puzzle stage

func (s *ServiceSuite) TestPuzzleSentinel() {
	s.True(s.check(5, "COMPLETED").Correct)
}

func (s *ServiceSuite) TestPuzzleRejectsOtherText() {
	s.False(s.check(5, "DONE").Correct)
}

// Final stage

func (s *ServiceSuite) completeLetterStages() {
	s.Require().True(s.check(1, "KONOHA").Correct)
	s.Require().True(s.check(2, "VILLAGE").Correct)
	s.Require().True(s.check(4, "SHARINGAN").Correct)
	s.Require().True(s.check(6, "HASHIRAMA").Correct)
}

func (s *ServiceSuite) TestFinalAnswerFromCollectedLetters() {
	s.completeLetterStages()
	s.True(s.check(7, "KVSH").Correct)
}

func (s *ServiceSuite) TestFinalWrongOrderRejected() {
	s.completeLetterStages()
	s.False(s.check(7, "HSVK").Correct)
}

func (s *ServiceSuite) TestFinalRejectedWithNoLetters() {
	// No letters collected: even an empty submission must not match
	s.False(s.check(7, "").Correct)
}

func (s *ServiceSuite) TestFinalRejectedWithPartialLetters() {
	s.Require().True(s.check(1, "KONOHA").Correct)
	s.Require().True(s.check(2, "VILLAGE").Correct)

	s.False(s.check(7, "KVSH").Correct)
	s.True(s.check(7, "KV").Correct)
}

// Errors

func (s *ServiceSuite) TestCheckAnswerPlayerNotFound() {
	_, err := s.service.CheckAnswer(s.ctx, "nonexistent", 1, "KONOHA")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestCheckAnswerUnknownStage() {
	_, err := s.service.CheckAnswer(s.ctx, "player-1", 99, "KONOHA")
	s.ErrorIs(err, model.ErrUnknownStage)
}

// Access codes

func (s *ServiceSuite) TestAccessCodeValid() {
	valid, err := s.service.CheckAccessCode(s.ctx, "player-1", 3, "ANBU")
	s.Require().NoError(err)
	s.True(valid)
}

func (s *ServiceSuite) TestAccessCodeNormalized() {
	valid, err := s.service.CheckAccessCode(s.ctx, "player-1", 3, " anbu ")
	s.Require().NoError(err)
	s.True(valid)
}

func (s *ServiceSuite) TestAccessCodeInvalid() {
	valid, err := s.service.CheckAccessCode(s.ctx, "player-1", 3, "ROOT")
	s.Require().NoError(err)
	s.False(valid)
}

func (s *ServiceSuite) TestAccessCodeUngatedStage() {
	valid, err := s.service.CheckAccessCode(s.ctx, "player-1", 1, "anything")
	s.Require().NoError(err)
	s.True(valid)
}

func (s *ServiceSuite) TestAccessCodePlayerNotFound() {
	_, err := s.service.CheckAccessCode(s.ctx, "nonexistent", 3, "ANBU")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// First letters query

func (s *ServiceSuite) TestFirstLettersInStageOrder() {
	s.Require().True(s.check(6, "HASHIRAMA").Correct)
	s.Require().True(s.check(1, "KONOHA").Correct)

	letters, err := s.service.FirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal([]StageLetter{
		{StageID: 1, Letter: "K"},
		{StageID: 6, Letter: "H"},
	}, letters)
}

func (s *ServiceSuite) TestFirstLettersEmpty() {
	letters, err := s.service.FirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(letters)
}

func (s *ServiceSuite) TestFirstLettersPlayerNotFound() {
	_, err := s.service.FirstLetters(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
