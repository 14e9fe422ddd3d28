// Package errors provides structured error handling for the Vessel toolkit.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindOwnershipConflict indicates a content unit was inserted into a
	// container while already owned by a different container.
	KindOwnershipConflict
	// KindInvalidState indicates an operation that requires an attached
	// view was invoked on a detached handle.
	KindInvalidState
	// KindStyle indicates an unrecognized transition style. Factories
	// degrade these to a no-op animation; the kind exists for reporting.
	KindStyle
	// KindSync indicates a misuse of a view-synchronization operation,
	// such as an empty participant set.
	KindSync
	// KindConfig indicates a configuration load or parse failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindOwnershipConflict:
		return "ownership-conflict"
	case KindInvalidState:
		return "invalid-state"
	case KindStyle:
		return "style"
	case KindSync:
		return "sync"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VesselError represents a structured error in the Vessel toolkit.
type VesselError struct {
	// Op is the operation that failed (e.g., "content.Registry.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Handle is the identity of the content handle involved, if applicable.
	Handle string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VesselError) Error() string {
	if e.Handle != "" {
		return fmt.Sprintf("%s [%s] handle=%s: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VesselError) Unwrap() error {
	return e.Err
}

// New creates a VesselError for the given operation and kind.
func New(op string, kind ErrorKind, err error) *VesselError {
	return &VesselError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf creates a VesselError wrapping a formatted message.
func Newf(op string, kind ErrorKind, format string, args ...any) *VesselError {
	return New(op, kind, fmt.Errorf(format, args...))
}

// KindOf extracts the ErrorKind from an error chain.
// Returns KindUnknown for nil or foreign errors.
func KindOf(err error) ErrorKind {
	var verr *VesselError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindUnknown
}

// IsOwnershipConflict reports whether err carries KindOwnershipConflict.
func IsOwnershipConflict(err error) bool {
	return KindOf(err) == KindOwnershipConflict
}

// IsInvalidState reports whether err carries KindInvalidState.
func IsInvalidState(err error) bool {
	return KindOf(err) == KindInvalidState
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "player.Playback.tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Vessel toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VesselError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
