package domain

import "errors"

var (
	// ErrInternalServerError is the only message a 5xx response ever carries
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidStrategy   = errors.New("invalid enumeration strategy")

	// request error
	ErrNoFile           = errors.New("No file received")
	ErrInvalidMetadata  = errors.New("Invalid metadata")
	ErrMissingWallet    = errors.New("No wallet connected")
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidTokenId   = errors.New("Invalid token id")
	ErrInvalidTxHash    = errors.New("Invalid transaction hash")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidNonce     = errors.New("Invalid nonce")

	// chain error
	ErrMintFailed      = errors.New("Mint failed")
	ErrMinterDisabled  = errors.New("minter key not configured")
	ErrTxPending       = errors.New("transaction pending")
	ErrPaymentMismatch = errors.New("Payment does not match")
)
