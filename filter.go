package medium

// Filter returns a read-only channel that receives the values from source
// for which pred returns true, in the order they were sent on source.
//
// pred runs inside source.Send. A panic in pred propagates to the caller
// of source.Send and skips the listeners registered on source after the
// filter.
func Filter[T any](
	source Source[T],
	pred func(T) bool,
	opts ...Option,
) *Channel[T] {
	return FilterErr(source, func(v T) (bool, error) {
		return pred(v), nil
	}, opts...)
}

// FilterErr is like Filter, but pred may fail. An error returned by pred
// stops the delivery on source and is returned by source.Send.
func FilterErr[T any](
	source Source[T],
	pred func(T) (bool, error),
	opts ...Option,
) *Channel[T] {
	target := New[T](derive(source, "filter", opts)...)

	source.ListenErr(func(v T) error {
		ok, err := pred(v)
		if err != nil || !ok {
			return err
		}
		return target.Send(v)
	})

	return target.ReadOnly()
}

// derive prefixes opts with a name derived from source.
func derive(source any, op string, opts []Option) []Option {
	name := op
	if n, ok := source.(interface{ Name() string }); ok {
		name = n.Name() + "." + op
	}
	return append([]Option{WithName(name)}, opts...)
}
