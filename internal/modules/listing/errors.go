package listing

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

// ErrorKind classifies a store failure so callers can render an
// actionable message instead of a raw driver error.
type ErrorKind string

const (
	KindAccessDenied       ErrorKind = "access_denied"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindUnknown            ErrorKind = "unknown"
)

// StoreError wraps a raw database error with its classified kind and a
// remediation hint surfaced to the end user.
type StoreError struct {
	Op   string
	Kind ErrorKind
	Hint string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Hint)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Hint, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// classify maps a raw error from the database layer into a StoreError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Op: op, Kind: KindNotFound, Hint: "listing not found", Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "42501" || pqErr.Code.Class() == "28":
			// insufficient_privilege or invalid authorization
			return &StoreError{Op: op, Kind: KindAccessDenied, Hint: "access denied, check the database access rules", Err: err}
		case pqErr.Code.Class() == "08" || pqErr.Code.Class() == "57":
			// connection exception or operator intervention (shutdown)
			return &StoreError{Op: op, Kind: KindServiceUnavailable, Hint: "database unavailable, check the connection and retry", Err: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return &StoreError{Op: op, Kind: KindServiceUnavailable, Hint: "database unavailable, check the connection and retry", Err: err}
	}

	return &StoreError{Op: op, Kind: KindUnknown, Hint: "unexpected storage failure", Err: err}
}

// KindOf returns the classified kind of err, or KindUnknown when err was
// not produced by the listing store.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
