package inventory

import (
	"errors"
	"fmt"
)

// Operation names a remote call made on behalf of the user.
type Operation string

const (
	OpLoad   Operation = "load"
	OpAdd    Operation = "add"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// ErrDeleteNotConfirmed is returned when a delete was requested without confirmation.
var ErrDeleteNotConfirmed = errors.New("delete requires confirmation")

// RemoteError reports a failed call to the product repository. Local state is
// left as it was before the call.
type RemoteError struct {
	Op  Operation
	Err error
}

// Message is the user-facing text for the failed operation.
func (e *RemoteError) Message() string {
	switch e.Op {
	case OpLoad:
		return "Failed to load products"
	case OpAdd:
		return "Error adding product"
	case OpUpdate:
		return "Error updating product"
	case OpDelete:
		return "Error deleting product"
	}
	return "Remote operation failed"
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
