package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username or email already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrTwoFACodeMismatch is returned when the compare-and-clear of a pending
	// two-factor code affects no rows: either the code was already consumed by
	// a concurrent verification or it has been overwritten by a newer login.
	ErrTwoFACodeMismatch = errors.New("two-factor code no longer pending")

	// ErrEmployeeAlreadyExists is returned when an INSERT into the employe
	// table collides with an existing matricule.
	ErrEmployeeAlreadyExists = errors.New("employee already exists")

	// ErrEmployeeNotFound is returned when a lookup, update or delete targets
	// a matricule that does not exist in the database.
	ErrEmployeeNotFound = errors.New("employee was not found")

	// ErrBureauAlreadyExists is returned when an INSERT into the bureau table
	// collides with an existing room number.
	ErrBureauAlreadyExists = errors.New("bureau already exists")

	// ErrBureauNotFound is returned when a lookup, update or delete targets a
	// room number that does not exist in the database.
	ErrBureauNotFound = errors.New("bureau was not found")

	// ErrAssignmentAlreadyExists is returned when an INSERT into the
	// affectation table collides with an existing (matricule, numero) pair.
	ErrAssignmentAlreadyExists = errors.New("assignment already exists")

	// ErrAssignmentNotFound is returned when an update or delete targets a
	// (matricule, numero) pair that does not exist in the database.
	ErrAssignmentNotFound = errors.New("assignment was not found")

	// ErrAssignmentReferences is returned when an INSERT or UPDATE on the
	// affectation table points at an employee or bureau that does not exist.
	ErrAssignmentReferences = errors.New("assignment references unknown employee or bureau")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no columns to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
