package medium

import (
	"errors"
	"time"
)

// Metrics holds delivery metrics for a single Send.
type Metrics struct {
	Channel  string
	Start    time.Time
	Duration time.Duration

	// Listeners is the number of listeners registered when Send was called.
	Listeners int
	// Delivered is the number of listeners that returned without error.
	Delivered int

	Error error
}

// Success returns a numeric indicator of success (1 for success, 0 otherwise).
func (m *Metrics) Success() int {
	if m.Error == nil {
		return 1
	}
	return 0
}

// Rejected returns 1 if the send was refused by a read-only view, 0 otherwise.
func (m *Metrics) Rejected() int {
	if errors.Is(m.Error, ErrInvalidOperation) {
		return 1
	}
	return 0
}

// MetricsCollector defines a function that collects single send metrics.
type MetricsCollector func(metrics *Metrics)

func newMetricsDistributor(collectors ...MetricsCollector) MetricsCollector {
	switch len(collectors) {
	case 0:
		return nil
	case 1:
		return collectors[0]
	}
	return func(m *Metrics) {
		for _, c := range collectors {
			c(m)
		}
	}
}
