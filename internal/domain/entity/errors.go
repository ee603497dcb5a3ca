package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownContainer is returned when a mutation references a dead or absent id.
	ErrUnknownContainer = errors.New("unknown container")

	// ErrInvalidOperation is returned for structurally impossible or no-op mutations.
	ErrInvalidOperation = errors.New("invalid layout operation")

	// ErrCannotRemoveFinalPanel guards the last panel of the docked tree.
	ErrCannotRemoveFinalPanel = fmt.Errorf("%w: cannot remove final panel", ErrInvalidOperation)

	// ErrDecode is matched by every DecodeError.
	ErrDecode = errors.New("layout decode error")
)

// DecodeError describes why a persisted layout was rejected.
type DecodeError struct {
	Node   int // index of the offending node, -1 when not node-specific
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("decode layout: %s", e.Reason)
	}
	return fmt.Sprintf("decode layout: node %d: %s", e.Node, e.Reason)
}

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func decodeErrorf(node int, format string, args ...any) *DecodeError {
	return &DecodeError{Node: node, Reason: fmt.Sprintf(format, args...)}
}

func unknownContainer(id ContainerID) error {
	return fmt.Errorf("%w: %d", ErrUnknownContainer, id)
}

func invalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}
