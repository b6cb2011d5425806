package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrIncorrectCredentials is returned for both an unknown email and a
	// wrong password. The two cases are deliberately indistinguishable so a
	// caller cannot probe which check failed.
	ErrIncorrectCredentials = errors.New("incorrect credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrThoughtTextRequired  = errors.New("thought text is required")
	ErrThoughtTextTooLong   = errors.New("thought text exceeds 280 characters")
	ErrReactionBodyRequired = errors.New("reaction body is required")
	ErrReactionBodyTooLong  = errors.New("reaction body exceeds 280 characters")
)
