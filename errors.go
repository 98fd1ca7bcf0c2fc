package pgstac

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error kinds, matched via errors.Is
var (
	// ErrEncode indicates that a request value could not be encoded to JSON
	ErrEncode = errors.New("pgstac: request encoding failed")

	// ErrDecode indicates that a procedure result could not be decoded into
	// the expected Go value
	ErrDecode = errors.New("pgstac: response decoding failed")

	// ErrQuery indicates that the connection layer reported a failure
	// (constraint violation, missing record, connection failure, ...)
	ErrQuery = errors.New("pgstac: query failed")

	// ErrUnknown indicates a failure whose cause could not be classified.
	// It should not occur in normal operation.
	ErrUnknown = errors.New("pgstac: unknown error")

	// errNullResult is the cause recorded when a procedure that must return
	// a value returned SQL NULL instead
	errNullResult = errors.New("procedure returned null")
)

// Error represents a pgstac error with operation context
type Error struct {
	Op   string // High-level operation that failed, e.g. "AddItem"
	Proc string // pgstac procedure that was invoked, e.g. "create_item"
	Kind error  // One of ErrEncode, ErrDecode, ErrQuery, ErrUnknown
	Err  error  // Original error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Proc != "" {
		return fmt.Sprintf("pgstac: %s failed for procedure=%s: %v", e.Op, e.Proc, e.Err)
	}
	return fmt.Sprintf("pgstac: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches one of the error kinds
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// IsEncode checks if the error is a request encoding error
func IsEncode(err error) bool {
	return errors.Is(err, ErrEncode)
}

// IsDecode checks if the error is a response decoding error
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsQuery checks if the error is a connection-layer query error
func IsQuery(err error) bool {
	return errors.Is(err, ErrQuery)
}

// wrapError wraps an error with operation context under a fixed kind
func wrapError(op, proc string, kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Proc: proc, Kind: kind, Err: err}
}

// classify maps a connection-layer failure to an error kind. Server-side
// errors, row-count mismatches, per-column scan failures and network
// failures are all query errors; anything without an identifiable cause
// falls back to ErrUnknown.
func classify(err error) error {
	var pgErr *pgconn.PgError
	var scanErr pgx.ScanArgError
	var netErr net.Error
	switch {
	case errors.As(err, &pgErr),
		errors.Is(err, pgx.ErrNoRows),
		errors.Is(err, pgx.ErrTooManyRows),
		errors.As(err, &scanErr),
		errors.As(err, &netErr):
		return ErrQuery
	default:
		return ErrUnknown
	}
}
