package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oridashi/scrollhunt/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:           "player-1",
		Name:         "ALICE",
		RegisteredAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestClaimPlayerName() {
	owner, created, err := s.storage.ClaimPlayerName(s.ctx, "ALICE", "player-1")
	s.Require().NoError(err)
	s.True(created)
	s.Equal(model.PlayerID("player-1"), owner)
}

func (s *StorageSuite) TestClaimPlayerNameTaken() {
	_, _, err := s.storage.ClaimPlayerName(s.ctx, "ALICE", "player-1")
	s.Require().NoError(err)

	owner, created, err := s.storage.ClaimPlayerName(s.ctx, "ALICE", "player-2")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(model.PlayerID("player-1"), owner)
}

func (s *StorageSuite) TestGetPlayerIDByName() {
	_, _, err := s.storage.ClaimPlayerName(s.ctx, "ALICE", "player-1")
	s.Require().NoError(err)

	owner, err := s.storage.GetPlayerIDByName(s.ctx, "ALICE")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), owner)
}

func (s *StorageSuite) TestGetPlayerIDByNameUnclaimed() {
	_, err := s.storage.GetPlayerIDByName(s.ctx, "ALICE")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestClaimDistinctNames() {
	_, created, err := s.storage.ClaimPlayerName(s.ctx, "ALICE", "player-1")
	s.Require().NoError(err)
	s.True(created)

	_, created, err = s.storage.ClaimPlayerName(s.ctx, "BOB", "player-2")
	s.Require().NoError(err)
	s.True(created)
}

// Stage progress tests

func (s *StorageSuite) TestAddCompletedStage() {
	added, err := s.storage.AddCompletedStage(s.ctx, "player-1", 1, "K")
	s.Require().NoError(err)
	s.True(added)

	completed, err := s.storage.GetCompletedStages(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal([]model.StageID{1}, completed)
}

func (s *StorageSuite) TestAddCompletedStageIdempotent() {
	added, err := s.storage.AddCompletedStage(s.ctx, "player-1", 1, "K")
	s.Require().NoError(err)
	s.True(added)

	added, err = s.storage.AddCompletedStage(s.ctx, "player-1", 1, "X")
	s.Require().NoError(err)
	s.False(added)

	// The original letter survives the duplicate submission
	letters, err := s.storage.GetFirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("K", letters[1])
}

func (s *StorageSuite) TestCompletedStagesSorted() {
	for _, id := range []model.StageID{4, 1, 3} {
		_, err := s.storage.AddCompletedStage(s.ctx, "player-1", id, "")
		s.Require().NoError(err)
	}

	completed, err := s.storage.GetCompletedStages(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal([]model.StageID{1, 3, 4}, completed)
}

func (s *StorageSuite) TestGetCompletedStagesEmpty() {
	completed, err := s.storage.GetCompletedStages(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(completed)
}

func (s *StorageSuite) TestEmptyLetterRecordsNothing() {
	added, err := s.storage.AddCompletedStage(s.ctx, "player-1", 3, "")
	s.Require().NoError(err)
	s.True(added)

	letters, err := s.storage.GetFirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Empty(letters)
}

func (s *StorageSuite) TestGetFirstLetters() {
	_, err := s.storage.AddCompletedStage(s.ctx, "player-1", 1, "K")
	s.Require().NoError(err)
	_, err = s.storage.AddCompletedStage(s.ctx, "player-1", 2, "V")
	s.Require().NoError(err)

	letters, err := s.storage.GetFirstLetters(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(map[model.StageID]string{1: "K", 2: "V"}, letters)
}

func (s *StorageSuite) TestStageProgressIsolatedPerPlayer() {
	_, err := s.storage.AddCompletedStage(s.ctx, "player-1", 1, "K")
	s.Require().NoError(err)

	completed, err := s.storage.GetCompletedStages(s.ctx, "player-2")
	s.Require().NoError(err)
	s.Empty(completed)
}

// Completion tests

func (s *StorageSuite) TestRecordAndGetCompletion() {
	completion := &model.Completion{
		PlayerID:    "player-1",
		CompletedAt: time.Now(),
		ElapsedMS:   125000,
		Score:       980,
	}

	recorded, err := s.storage.RecordCompletion(s.ctx, completion)
	s.Require().NoError(err)
	s.True(recorded)

	retrieved, err := s.storage.GetCompletion(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(completion.Score, retrieved.Score)
	s.Equal(completion.ElapsedMS, retrieved.ElapsedMS)
}

func (s *StorageSuite) TestRecordCompletionWriteOnce() {
	first := &model.Completion{PlayerID: "player-1", ElapsedMS: 1000, Score: 990}
	recorded, err := s.storage.RecordCompletion(s.ctx, first)
	s.Require().NoError(err)
	s.True(recorded)

	second := &model.Completion{PlayerID: "player-1", ElapsedMS: 9000, Score: 100}
	recorded, err = s.storage.RecordCompletion(s.ctx, second)
	s.Require().NoError(err)
	s.False(recorded)

	retrieved, err := s.storage.GetCompletion(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(1000), retrieved.ElapsedMS)
	s.Equal(990, retrieved.Score)
}

func (s *StorageSuite) TestGetCompletionNotFound() {
	_, err := s.storage.GetCompletion(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrCompletionNotFound)
}

func (s *StorageSuite) TestListCompletionsInOrder() {
	for i, id := range []model.PlayerID{"player-2", "player-1", "player-3"} {
		_, err := s.storage.RecordCompletion(s.ctx, &model.Completion{
			PlayerID:  id,
			ElapsedMS: int64(i),
		})
		s.Require().NoError(err)
	}

	completions, err := s.storage.ListCompletions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(completions, 3)
	s.Equal(model.PlayerID("player-2"), completions[0].PlayerID)
	s.Equal(model.PlayerID("player-1"), completions[1].PlayerID)
	s.Equal(model.PlayerID("player-3"), completions[2].PlayerID)
}

// Game config tests

func (s *StorageSuite) TestSaveAndGetGameConfig() {
	cfg := &model.GameConfig{
		GameOpenTime:        time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		MaxPoints:           1000,
		PointDecayPerMinute: 10,
	}

	err := s.storage.SaveGameConfig(s.ctx, cfg)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGameConfig(s.ctx)
	s.Require().NoError(err)
	s.Equal(cfg.MaxPoints, retrieved.MaxPoints)
	s.True(cfg.GameOpenTime.Equal(retrieved.GameOpenTime))
}

func (s *StorageSuite) TestGetGameConfigNotSet() {
	_, err := s.storage.GetGameConfig(s.ctx)
	s.ErrorIs(err, model.ErrConfigNotSet)
}

// Stage definition tests

func (s *StorageSuite) TestSaveAndGetStages() {
	defs := []model.StageDefinition{
		{ID: 1, Type: model.StageTypeCode, Answers: []string{"KONOHA"}},
		{ID: 2, Type: model.StageTypeFinal},
	}

	err := s.storage.SaveStages(s.ctx, defs)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetStages(s.ctx)
	s.Require().NoError(err)
	s.Equal(defs, retrieved)
}

func (s *StorageSuite) TestGetStagesNotLoaded() {
	_, err := s.storage.GetStages(s.ctx)
	s.ErrorIs(err, model.ErrStagesNotLoaded)
}
