package gameconfig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func validConfig() *model.GameConfig {
	return &model.GameConfig{
		GameOpenTime:        time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		MaxPoints:           1000,
		PointDecayPerMinute: 10,
	}
}

func (s *ServiceSuite) TestSetAndGet() {
	err := s.service.Set(s.ctx, validConfig())
	s.Require().NoError(err)

	cfg, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(1000, cfg.MaxPoints)
	s.Equal(10, cfg.PointDecayPerMinute)
}

func (s *ServiceSuite) TestGetNotSet() {
	_, err := s.service.Get(s.ctx)
	s.ErrorIs(err, model.ErrConfigNotSet)
}

func (s *ServiceSuite) TestSetRejectsZeroOpenTime() {
	cfg := validConfig()
	cfg.GameOpenTime = time.Time{}
	s.ErrorIs(s.service.Set(s.ctx, cfg), model.ErrInvalidConfig)
}

func (s *ServiceSuite) TestSetRejectsNonPositiveMaxPoints() {
	cfg := validConfig()
	cfg.MaxPoints = 0
	s.ErrorIs(s.service.Set(s.ctx, cfg), model.ErrInvalidConfig)
}

func (s *ServiceSuite) TestSetRejectsNegativeDecay() {
	cfg := validConfig()
	cfg.PointDecayPerMinute = -1
	s.ErrorIs(s.service.Set(s.ctx, cfg), model.ErrInvalidConfig)
}

func (s *ServiceSuite) TestSetAllowsZeroDecay() {
	cfg := validConfig()
	cfg.PointDecayPerMinute = 0
	s.NoError(s.service.Set(s.ctx, cfg))
}

func (s *ServiceSuite) TestSetOverwrites() {
	s.Require().NoError(s.service.Set(s.ctx, validConfig()))

	updated := validConfig()
	updated.MaxPoints = 2000
	s.Require().NoError(s.service.Set(s.ctx, updated))

	cfg, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(2000, cfg.MaxPoints)
}

func (s *ServiceSuite) TestSetIfUnsetSeeds() {
	err := s.service.SetIfUnset(s.ctx, validConfig())
	s.Require().NoError(err)

	cfg, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(1000, cfg.MaxPoints)
}

func (s *ServiceSuite) TestSetIfUnsetDoesNotClobber() {
	s.Require().NoError(s.service.Set(s.ctx, validConfig()))

	seed := validConfig()
	seed.MaxPoints = 50
	s.Require().NoError(s.service.SetIfUnset(s.ctx, seed))

	cfg, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(1000, cfg.MaxPoints)
}
