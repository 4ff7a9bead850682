// Package medium provides a synchronous broadcast channel and combinators
// that derive new channels from existing ones.
//
// A Channel delivers every sent value to all of its listeners, in the
// order they were registered, before Send returns. There is no buffering,
// no goroutine and no queue between sender and listener.
//
// # Quick Start
//
//	ch := medium.New[int]()
//	positive := medium.Filter(ch, func(i int) bool { return i > 0 })
//	positive.Listen(func(i int) { fmt.Println("i>0", i) })
//	ch.MustSend(1).MustSend(-1).MustSend(13).MustSend(4)
//	_ = ch.Send(2)
//
// # Categories
//
// Core: [New], [Channel.Listen], [Channel.ListenErr], [Channel.Send],
// [Channel.MustSend], [Channel.ReadOnly]
//
// Combinators: [Filter], [FilterErr], [Transform], [Merge], [Throttle]
//
// Combinators return read-only views. Sending on a read-only view fails
// with [ErrInvalidOperation].
//
// # Failures
//
// A listener that returns an error, or panics, stops the delivery: the
// listeners registered after it are not invoked for that value. Errors are
// returned by Send wrapped in a [ListenerError]; panics unwind through Send
// unless the channel was created with [WithRecover].
package medium
