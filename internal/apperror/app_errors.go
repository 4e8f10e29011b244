package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrIllegalMove         = errors.New("illegal move")
	ErrInvalidSymbol       = errors.New("invalid player symbol")
	ErrInconsistentPayload = errors.New("game payload is inconsistent")

	ErrInvalidPasskey        = errors.New("invalid passkey")
	ErrMalformedToken        = errors.New("malformed token")
	ErrAuthenticationFailure = errors.New("token authentication failed")
	ErrDecryptionFailed      = errors.New("decryption failed")
)
