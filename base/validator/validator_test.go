package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmint/domain"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{"too short", "0x000", false},
		{"checksummed", "0x522b5aAdE25E0f5795AB91A9447564b3978b9335", true},
		{"lower case", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", true},
		{"missing prefix", "939ae6a4c8dfdbb1f7085189574f0a938013952b", false},
		{"not hex", "0x939ae6a4c8dfdbb1f7085189574f0a93801395zz", false},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	type payload struct {
		To   string `validate:"required,address"`
		Name string `validate:"required"`
	}
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&payload{To: "0x522b5aAdE25E0f5795AB91A9447564b3978b9335", Name: "a"}))

	err := v.Validate(&payload{To: "0x1", Name: "a"})
	s.True(errors.Is(err, domain.ErrBadParamInput))

	err = v.Validate(&domain.NftMetadata{Name: "n", Image: "not a uri"})
	s.True(errors.Is(err, domain.ErrBadParamInput))
	s.NoError(v.Validate(&domain.NftMetadata{Name: "n", Image: "ipfs://bafy"}))
}
