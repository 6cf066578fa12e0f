package retry

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/utils/clock"

	"github.com/cloudbinding/provisioner/pkg/api"
)

// ConditionFunc reports whether the awaited condition holds. A returned error
// is treated as "not yet" unless it is wrapped with Permanent.
type ConditionFunc func(ctx context.Context) (bool, error)

// Backoff bounds a wait. The condition is checked immediately, then after
// InitialPeriod, then after successive doublings capped at MaxPeriod. The last
// sleep is clipped so that the total never exceeds Timeout.
type Backoff struct {
	Timeout       time.Duration
	InitialPeriod time.Duration
	MaxPeriod     time.Duration

	// Clock defaults to the real clock.
	Clock clock.Clock
}

func (b Backoff) clock() clock.Clock {
	if b.Clock == nil {
		return clock.RealClock{}
	}
	return b.Clock
}

func (b Backoff) steps() *wait.Backoff {
	initial := b.InitialPeriod
	if initial <= 0 {
		initial = time.Millisecond
	}
	maxPeriod := b.MaxPeriod
	if maxPeriod < initial {
		maxPeriod = initial
	}
	return &wait.Backoff{
		Duration: initial,
		Factor:   2,
		Steps:    math.MaxInt32,
		Cap:      maxPeriod,
	}
}

// Schedule returns the sleeps AwaitTrue performs between checks when the
// condition never holds.
func Schedule(b Backoff) []time.Duration {
	var sleeps []time.Duration
	steps := b.steps()
	for elapsed := time.Duration(0); elapsed < b.Timeout; {
		d := min(steps.Step(), b.Timeout-elapsed)
		sleeps = append(sleeps, d)
		elapsed += d
	}
	return sleeps
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent marks err as not retryable. AwaitTrue returns the wrapped error
// as soon as a condition returns it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// AwaitTrue checks the condition until it holds or b.Timeout elapses. It
// returns true when the condition held and false, nil when the timeout
// elapsed. Cancelling ctx returns an *api.CancelledError.
func AwaitTrue(ctx context.Context, log *logrus.Entry, b Backoff, check ConditionFunc) (bool, error) {
	clk := b.clock()
	start := clk.Now()
	steps := b.steps()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return false, &api.CancelledError{Elapsed: clk.Since(start), Err: err}
		}

		ok, err := check(ctx)
		if err != nil {
			var perm *permanentError
			if errors.As(err, &perm) {
				return false, perm.err
			}
			log.Debugf("attempt %d: %v", attempt, err)
		} else if ok {
			return true, nil
		}

		remaining := b.Timeout - clk.Since(start)
		if remaining <= 0 {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, &api.CancelledError{Elapsed: clk.Since(start), Err: ctx.Err()}
		case <-clk.After(min(steps.Step(), remaining)):
		}
	}
}
