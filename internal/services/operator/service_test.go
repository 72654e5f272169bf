package operator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestValidateCorrectKey() {
	hash, err := HashKey("hunt-master")
	s.Require().NoError(err)

	service := New(hash)
	s.True(service.Enabled())
	s.NoError(service.ValidateKey("hunt-master"))
}

func (s *ServiceSuite) TestValidateWrongKey() {
	hash, err := HashKey("hunt-master")
	s.Require().NoError(err)

	service := New(hash)
	s.ErrorIs(service.ValidateKey("guess"), ErrInvalidKey)
}

func (s *ServiceSuite) TestDisabledWithoutHash() {
	service := New("")
	s.False(service.Enabled())
	s.ErrorIs(service.ValidateKey("anything"), ErrDisabled)
}

func (s *ServiceSuite) TestMalformedHashRejectsAllKeys() {
	service := New("not-a-bcrypt-hash")
	s.True(service.Enabled())
	s.ErrorIs(service.ValidateKey("anything"), ErrInvalidKey)
}
