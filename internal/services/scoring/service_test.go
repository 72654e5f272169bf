package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oridashi/scrollhunt/internal/dependencies/mocks"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	openTime time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.openTime = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(s.openTime)
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()

	err := s.storage.SavePlayer(s.ctx, &model.Player{
		ID:   "player-1",
		Name: "ALICE",
	})
	s.Require().NoError(err)

	err = s.storage.SaveGameConfig(s.ctx, &model.GameConfig{
		GameOpenTime:        s.openTime,
		MaxPoints:           1000,
		PointDecayPerMinute: 10,
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) completeAllStages(id model.PlayerID) {
	for _, stage := range model.AllStageIDs() {
		_, err := s.storage.AddCompletedStage(s.ctx, id, stage, "")
		s.Require().NoError(err)
	}
}

// Submission tests

func (s *ServiceSuite) TestSubmitCompletion() {
	s.completeAllStages("player-1")
	s.clock.Advance(125 * time.Second)

	completion, err := s.service.SubmitCompletion(s.ctx, "player-1")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("player-1"), completion.PlayerID)
	s.Equal(int64(125000), completion.ElapsedMS)
	// 125s is 2 whole minutes of decay: 1000 - 2*10
	s.Equal(980, completion.Score)
}

func (s *ServiceSuite) TestSubmitIncomplete() {
	_, err := s.storage.AddCompletedStage(s.ctx, "player-1", 1, "K")
	s.Require().NoError(err)

	_, err = s.service.SubmitCompletion(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrIncomplete)
}

func (s *ServiceSuite) TestSubmitNoStagesCompleted() {
	_, err := s.service.SubmitCompletion(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrIncomplete)
}

func (s *ServiceSuite) TestSubmitPlayerNotFound() {
	_, err := s.service.SubmitCompletion(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestSubmitConfigNotSet() {
	fresh := memory.New()
	err := fresh.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "ALICE"})
	s.Require().NoError(err)
	service := New(fresh, s.clock)

	for _, stage := range model.AllStageIDs() {
		_, err := fresh.AddCompletedStage(s.ctx, "player-1", stage, "")
		s.Require().NoError(err)
	}

	_, err = service.SubmitCompletion(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrConfigNotSet)
}

func (s *ServiceSuite) TestResubmissionReturnsOriginalRecord() {
	s.completeAllStages("player-1")
	s.clock.Advance(2 * time.Minute)

	first, err := s.service.SubmitCompletion(s.ctx, "player-1")
	s.Require().NoError(err)

	// Much later resubmission (page reload) must not change anything
	s.clock.Advance(3 * time.Hour)
	second, err := s.service.SubmitCompletion(s.ctx, "player-1")
	s.Require().NoError(err)

	s.Equal(first.ElapsedMS, second.ElapsedMS)
	s.Equal(first.Score, second.Score)
	s.Equal(first.CompletedAt, second.CompletedAt)
}

func (s *ServiceSuite) TestElapsedClampedBeforeOpenTime() {
	s.completeAllStages("player-1")
	s.clock.Set(s.openTime.Add(-10 * time.Minute))

	completion, err := s.service.SubmitCompletion(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(int64(0), completion.ElapsedMS)
	s.Equal(1000, completion.Score)
}

// Score function tests

func (s *ServiceSuite) TestScoreZeroElapsed() {
	cfg := &model.GameConfig{MaxPoints: 1000, PointDecayPerMinute: 10}
	s.Equal(1000, Score(0, cfg))
}

func (s *ServiceSuite) TestScorePartialMinuteNoDecay() {
	cfg := &model.GameConfig{MaxPoints: 1000, PointDecayPerMinute: 10}
	s.Equal(1000, Score(59*time.Second, cfg))
}

func (s *ServiceSuite) TestScoreWholeMinutesFloored() {
	cfg := &model.GameConfig{MaxPoints: 1000, PointDecayPerMinute: 10}
	s.Equal(990, Score(60*time.Second, cfg))
	s.Equal(990, Score(119*time.Second, cfg))
	s.Equal(980, Score(125*time.Second, cfg))
}

func (s *ServiceSuite) TestScoreFlooredAtZero() {
	cfg := &model.GameConfig{MaxPoints: 100, PointDecayPerMinute: 10}
	s.Equal(0, Score(3*time.Hour, cfg))
}

func (s *ServiceSuite) TestScoreNegativeElapsedClamped() {
	cfg := &model.GameConfig{MaxPoints: 1000, PointDecayPerMinute: 10}
	s.Equal(1000, Score(-time.Minute, cfg))
}

func (s *ServiceSuite) TestScoreZeroDecay() {
	cfg := &model.GameConfig{MaxPoints: 500, PointDecayPerMinute: 0}
	s.Equal(500, Score(48*time.Hour, cfg))
}

func (s *ServiceSuite) TestScoreMonotonicallyNonIncreasing() {
	cfg := &model.GameConfig{MaxPoints: 1000, PointDecayPerMinute: 7}
	prev := Score(0, cfg)
	for elapsed := time.Minute; elapsed <= 4*time.Hour; elapsed += 13 * time.Minute {
		score := Score(elapsed, cfg)
		s.LessOrEqual(score, prev)
		prev = score
	}
}
