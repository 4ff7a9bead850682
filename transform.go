package medium

// Transform returns a read-only channel that receives handle(v) for each
// value v sent on source.
func Transform[In, Out any](
	source Source[In],
	handle func(In) Out,
	opts ...Option,
) *Channel[Out] {
	target := New[Out](derive(source, "transform", opts)...)

	source.ListenErr(func(v In) error {
		return target.Send(handle(v))
	})

	return target.ReadOnly()
}
