package medium

import (
	"fmt"
	"runtime/debug"
)

// RecoveryError wraps a panic value with the stack trace.
// Channels created WithRecover(true) convert listener panics into this error.
type RecoveryError struct {
	// PanicValue is the original value that was passed to panic().
	PanicValue any
	// StackTrace contains the full stack trace at the point of panic.
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.PanicValue)
}

func useRecover[T any](fn func(T) error) func(T) error {
	return func(v T) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &RecoveryError{
					PanicValue: r,
					StackTrace: string(debug.Stack()),
				}
			}
		}()
		return fn(v)
	}
}
