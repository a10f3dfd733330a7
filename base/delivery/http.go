package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorResponse is the bare error body of the upload endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

var badRequestErrs = []error{
	domain.ErrBadParamInput,
	domain.ErrInvalidAddress,
	domain.ErrInvalidTokenId,
	domain.ErrInvalidTxHash,
	domain.ErrInvalidSignature,
	domain.ErrInvalidNonce,
	domain.ErrInvalidMetadata,
	domain.ErrMissingWallet,
	domain.ErrNoFile,
	domain.ErrPaymentMismatch,
}

// StatusOf maps domain errors to http status codes
func StatusOf(err error) int {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
		return http.StatusNotFound
	}
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}
	if errors.Is(err, domain.ErrTxPending) {
		return http.StatusAccepted
	}
	if errors.Is(err, domain.ErrMinterDisabled) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// MakeErrorResp writes {"error": msg}. Anything that is not a client error is reported as
// domain.ErrInternalServerError so internals never leak.
func MakeErrorResp(c echo.Context, err error) error {
	status := StatusOf(err)
	msg := domain.ErrInternalServerError.Error()
	if status < http.StatusInternalServerError {
		msg = rootOf(err).Error()
	}
	return c.JSON(status, ErrorResponse{msg})
}

// rootOf unwraps to the innermost error so wrapped sentinels print their own text
func rootOf(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
