package service

import "errors"

var (
	// ErrInvalidDataProvided marks malformed or incomplete input
	// (missing required fields, empty title/message, bad enum values).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for every login failure — absent
	// account, deactivated account, or wrong password — so the response
	// never reveals which part failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenIsExpiredOrInvalid normalises every token validation
	// failure (expired, wrong issuer, malformed, unknown principal).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new session
	// token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotAllowed is returned when the acting principal lacks the role
	// or ownership required by the operation.
	ErrNotAllowed = errors.New("access denied")

	// ErrInvalidRecipient is returned when a notification targets an
	// existing principal that is not a resident.
	ErrInvalidRecipient = errors.New("can only send notifications to residents")

	// ErrInvalidResponse is returned when a notification response is not
	// exactly "coming" or "not_coming".
	ErrInvalidResponse = errors.New("valid response is required: coming or not_coming")

	// ErrNotAResident is returned when a resident operation targets an
	// existing principal of a different role.
	ErrNotAResident = errors.New("user is not a resident")
)
