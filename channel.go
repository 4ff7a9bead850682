package medium

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Source is the subscribe side of a channel.
// Every *Channel, writable or read-only, is a Source.
type Source[T any] interface {
	// Listen registers fn to receive every value sent after the call.
	Listen(fn func(T))
	// ListenErr registers fn like Listen. A non-nil error returned by fn
	// stops the delivery and is returned to the sender.
	ListenErr(fn func(T) error)
}

// Channel is a synchronous broadcast channel.
//
// Send invokes the registered listeners in registration order on the
// calling goroutine. A listener may send on any channel, including its
// own; nested sends run to completion before the outer send continues.
// A Channel is not safe for concurrent use.
type Channel[T any] struct {
	hub      *hub[T]
	readOnly bool
}

type subscription[T any] struct {
	id uuid.UUID
	fn func(T) error
}

// hub is the state shared by a channel and all of its read-only views.
type hub[T any] struct {
	cfg  config
	subs []subscription[T]
	// collect is nil if no collector is configured.
	collect MetricsCollector
}

// New creates a channel without listeners.
func New[T any](opts ...Option) *Channel[T] {
	cfg := parseConfig(opts)
	return &Channel[T]{
		hub: &hub[T]{
			cfg:     cfg,
			collect: newMetricsDistributor(cfg.metricsCollector...),
		},
	}
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.hub.cfg.name
}

// Len returns the number of registered listeners.
func (c *Channel[T]) Len() int {
	return len(c.hub.subs)
}

// IsReadOnly reports whether c rejects Send.
func (c *Channel[T]) IsReadOnly() bool {
	return c.readOnly
}

// Listen registers fn to receive every value sent after the call.
// Listening on a read-only view registers on the underlying channel.
func (c *Channel[T]) Listen(fn func(T)) {
	c.ListenErr(func(v T) error {
		fn(v)
		return nil
	})
}

// ListenErr registers fn to receive every value sent after the call.
// A non-nil error returned by fn stops the delivery and is returned by
// Send wrapped in a *ListenerError.
func (c *Channel[T]) ListenErr(fn func(T) error) {
	h := c.hub
	if h.cfg.recover {
		fn = useRecover(fn)
	}
	sub := subscription[T]{id: uuid.New(), fn: fn}
	h.subs = append(h.subs, sub)

	h.cfg.logger.Debug("MEDIUM: Listen",
		"channel", h.cfg.name,
		"id", sub.id.String(),
		"listeners", len(h.subs))
}

// Send invokes every listener registered at call time with v, in
// registration order, and returns nil once all of them returned.
//
// Send on a read-only view returns an error matching ErrInvalidOperation
// without invoking any listener. If a listener fails, the remaining
// listeners are skipped. Listener panics unwind through Send unless the
// channel was created WithRecover(true).
func (c *Channel[T]) Send(v T) error {
	h := c.hub
	if c.readOnly {
		err := newErrReadOnly(h.cfg.name)
		h.cfg.logger.Warn("MEDIUM: Send rejected", "channel", h.cfg.name, "error", err)
		h.report(&Metrics{Channel: h.cfg.name, Start: time.Now(), Error: err})
		return err
	}

	// Listeners added during this send are not part of it.
	subs := h.subs
	m := &Metrics{
		Channel:   h.cfg.name,
		Start:     time.Now(),
		Listeners: len(subs),
	}

	for i, sub := range subs {
		if err := sub.fn(v); err != nil {
			m.Error = &ListenerError{
				Channel: h.cfg.name,
				ID:      sub.id,
				Index:   i,
				Err:     err,
			}
			break
		}
		m.Delivered++
	}
	m.Duration = time.Since(m.Start)

	if m.Error != nil {
		var nested *ListenerError
		if !errors.As(errors.Unwrap(m.Error), &nested) {
			h.cfg.logger.Error("MEDIUM: Delivery failed",
				"channel", h.cfg.name,
				"delivered", m.Delivered,
				"listeners", m.Listeners,
				"error", m.Error)
		}
	}
	h.report(m)
	return m.Error
}

// MustSend is like Send but panics on error. It returns c so that sends
// can be chained.
func (c *Channel[T]) MustSend(v T) *Channel[T] {
	if err := c.Send(v); err != nil {
		panic(err)
	}
	return c
}

// ReadOnly returns a view of c that accepts listeners but rejects Send.
func (c *Channel[T]) ReadOnly() *Channel[T] {
	return &Channel[T]{hub: c.hub, readOnly: true}
}

func (h *hub[T]) report(m *Metrics) {
	if h.collect != nil {
		h.collect(m)
	}
}
