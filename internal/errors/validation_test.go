package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("house", "is required")
	ve.AddFieldError("type", "is invalid")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: house: is required; type: is invalid", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("query", "is too long").
		Fieldf("page", "must be at least %d", 1).
		RequiredField("id")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "page: must be at least 1")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", "   ", vb)
	errors.ValidateRequired("name", "Lumos", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "id: is required")
	s.Assert().NotContains(err.Error(), "name")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"Gryffindor", "Slytherin"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("house", "Gryffindor", allowed, vb)
	s.Assert().Nil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("house", "Durmstrang", allowed, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of: Gryffindor, Slytherin")
}
