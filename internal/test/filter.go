package test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FilterFunc builds a filtered view over a fresh channel. It returns the
// upstream send and the downstream listen.
type FilterFunc func(pred func(int) bool) (send func(int) error, listen func(func(int)))

func collect(listen func(func(int))) *[]int {
	got := []int{}
	listen(func(v int) { got = append(got, v) })
	return &got
}

func sendAll(t *testing.T, send func(int) error, vals ...int) {
	t.Helper()
	for _, v := range vals {
		require.NoError(t, send(v))
	}
}

func RunFilter_Positive(t *testing.T, f FilterFunc) {
	t.Run("filter positive", func(t *testing.T) {
		send, listen := f(func(i int) bool { return i > 0 })
		got := collect(listen)

		sendAll(t, send, 1, -1, 13, 4, 2)

		require.Equal(t, []int{1, 13, 4, 2}, *got)
	})
}

func RunFilter_Even(t *testing.T, f FilterFunc) {
	t.Run("filter even", func(t *testing.T) {
		send, listen := f(func(v int) bool { return v%2 == 0 })
		got := collect(listen)

		sendAll(t, send, 1, 2, 3, 4, 5)

		require.Equal(t, []int{2, 4}, *got)
	})
}

func RunFilter_AllFalse(t *testing.T, f FilterFunc) {
	t.Run("filter all false", func(t *testing.T) {
		send, listen := f(func(int) bool { return false })
		got := collect(listen)

		sendAll(t, send, 1, 3)

		require.Empty(t, *got)
	})
}

func RunFilter_Closure(t *testing.T, f FilterFunc) {
	t.Run("filter closure", func(t *testing.T) {
		threshold := 10
		send, listen := f(func(v int) bool { return v > threshold })
		got := collect(listen)

		sendAll(t, send, 42, 5)
		threshold = 1
		sendAll(t, send, 5)

		require.Equal(t, []int{42, 5}, *got)
	})
}

// RunFilter_Subsequence checks that the output is the order-preserving
// subsequence of the input for which the predicate holds.
func RunFilter_Subsequence(t *testing.T, f FilterFunc) {
	t.Run("filter subsequence", func(t *testing.T) {
		pred := func(v int) bool { return v%3 != 0 }
		send, listen := f(pred)
		got := collect(listen)

		in := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2, 3}
		var expected []int
		for _, v := range in {
			if pred(v) {
				expected = append(expected, v)
			}
		}
		sendAll(t, send, in...)

		require.Equal(t, expected, *got)
	})
}

func RunFilter_MultipleListeners(t *testing.T, f FilterFunc) {
	t.Run("filter multiple listeners", func(t *testing.T) {
		send, listen := f(func(v int) bool { return v != 0 })
		first := collect(listen)
		second := collect(listen)

		sendAll(t, send, 0, 1, 0, 2)

		require.Equal(t, []int{1, 2}, *first)
		require.Equal(t, []int{1, 2}, *second)
	})
}
