package medium

// Merge returns a read-only channel that receives the values sent on any
// of sources, in the order they were sent.
func Merge[T any](sources ...Source[T]) *Channel[T] {
	target := New[T](WithName("merge"))

	for _, source := range sources {
		source.ListenErr(target.Send)
	}

	return target.ReadOnly()
}
