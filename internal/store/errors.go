package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when creating an account fails because
	// a principal with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when creating or updating a resident fails
	// because another account already uses the email address.
	ErrEmailTaken = errors.New("email already exists")

	// ErrRoomOccupied is returned when creating or updating a resident
	// fails because an active resident already occupies the room number.
	ErrRoomOccupied = errors.New("room is already occupied")

	// ErrUserNotFound is returned when a query expected to match a
	// principal produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrNotificationNotFound is returned when a query or update targets a
	// notification that does not exist.
	ErrNotificationNotFound = errors.New("notification was not found")

	// ErrNothingToUpdate is returned when a partial update request carries
	// no fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
