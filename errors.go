package medium

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidOperation indicates a call that the channel does not permit,
// such as sending on a read-only view.
var ErrInvalidOperation = errors.New("medium: invalid operation")

// ListenerError is returned by Send when a listener fails.
// Delivery stops at the failing listener.
type ListenerError struct {
	// Channel is the name of the channel the listener was registered on.
	Channel string
	// ID identifies the subscription.
	ID uuid.UUID
	// Index is the position of the listener in registration order.
	Index int
	// Err is the error returned by the listener.
	Err error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("medium: listener %d on %q: %v", e.Index, e.Channel, e.Err)
}

func (e *ListenerError) Unwrap() error {
	return e.Err
}

func newErrReadOnly(name string) error {
	return fmt.Errorf("%w: send on read-only channel %q", ErrInvalidOperation, name)
}
