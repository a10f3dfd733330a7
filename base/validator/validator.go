package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmint/domain"
)

// IsValidAddress reports whether address is a 20-byte hex address, checksum case is not enforced
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) || !strings.HasPrefix(address, "0x") {
		return false
	}
	return strings.EqualFold(common.HexToAddress(address).Hex(), address)
}

func isAddressField(fl validator.FieldLevel) bool {
	return IsValidAddress(fl.Field().String())
}

// New returns a validator with the "address" tag registered
func New() *validator.Validate {
	v := validator.New()
	// registering a well-formed tag never fails
	_ = v.RegisterValidation("address", isAddressField)
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

// Validate wraps failures with domain.ErrBadParamInput
func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return xerrors.Errorf("%w: %s", domain.ErrBadParamInput, err.Error())
	}
	return nil
}
