package medium

import "github.com/fxsml/medium/throttle"

// Throttle returns a read-only channel that receives a value from source
// only if allower admits it at the time it is sent. Values that are not
// admitted are dropped.
func Throttle[T any](
	source Source[T],
	allower throttle.Allower,
	opts ...Option,
) *Channel[T] {
	return Filter(source, func(T) bool {
		return allower.Allow()
	}, derive(source, "throttle", opts)...)
}
