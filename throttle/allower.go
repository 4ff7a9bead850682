// Package throttle provides admission policies for the medium.Throttle
// combinator.
package throttle

import (
	"golang.org/x/time/rate"
)

// Allower decides whether the next value may pass.
// Allow must not block; a value that is not allowed is dropped.
type Allower interface {
	Allow() bool
}

// NewRateAllower creates a token bucket allower that refills at limit
// tokens per second and holds at most burst tokens.
// The bucket starts full.
func NewRateAllower(limit rate.Limit, burst int) Allower {
	return rate.NewLimiter(limit, burst)
}

type budgetAllower struct {
	remaining int
}

// NewBudgetAllower returns an Allower that admits exactly n values and
// rejects all values after that. A negative n is treated as zero.
func NewBudgetAllower(n int) Allower {
	return &budgetAllower{remaining: max(n, 0)}
}

func (a *budgetAllower) Allow() bool {
	if a.remaining == 0 {
		return false
	}
	a.remaining--
	return true
}

type noopAllower struct{}

// NewNoopAllower returns an Allower that admits every value.
func NewNoopAllower() Allower {
	return noopAllower{}
}

func (noopAllower) Allow() bool {
	return true
}
