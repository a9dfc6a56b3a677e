package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOperationNotFound is returned when a queue operation identified
	// by id does not exist in the database.
	ErrOperationNotFound = errors.New("sync operation was not found")

	// ErrEntityNotFound is returned when no version metadata exists for
	// the requested (entity_type, entity_id) pair.
	ErrEntityNotFound = errors.New("entity version metadata was not found")

	// ErrOperationNotSaved is returned when an INSERT of an operation
	// completes without error but the number of affected rows is zero,
	// indicating that nothing was actually persisted.
	ErrOperationNotSaved = errors.New("sync operation was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan operation row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan operation rows")
)
