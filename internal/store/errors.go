package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user cannot be registered
	// because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("no user was found")

	// ErrTripNotFound is returned when a read or update targets a trip id
	// that does not exist.
	ErrTripNotFound = errors.New("trip was not found")

	// ErrAuthorNotFound is returned when a trip references a user that
	// does not exist (foreign key violation on author_id).
	ErrAuthorNotFound = errors.New("trip author was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Object storage errors.
var (
	// ErrObjectUpload is returned when a backend rejects or fails an upload.
	ErrObjectUpload = errors.New("failed to upload object")

	// ErrObjectDelete is returned when a backend fails to remove an object.
	ErrObjectDelete = errors.New("failed to delete object")

	// ErrInvalidObjectKey is returned for keys that would escape the
	// storage namespace.
	ErrInvalidObjectKey = errors.New("invalid object key")

	// ErrUnknownObjectBackend is returned by [NewObjectStorage] for an
	// unsupported backend name.
	ErrUnknownObjectBackend = errors.New("unknown object storage backend")
)
