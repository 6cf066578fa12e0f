package clock

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sync"
	"time"

	testingclock "k8s.io/utils/clock/testing"
)

// SteppingClock is a fake clock whose After advances fake time by the full
// duration and fires immediately, so waits complete without real sleeping.
// Every requested duration is recorded.
type SteppingClock struct {
	*testingclock.FakeClock

	mu     sync.Mutex
	sleeps []time.Duration
}

// Epoch is the time every SteppingClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func NewSteppingClock() *SteppingClock {
	return &SteppingClock{FakeClock: testingclock.NewFakeClock(Epoch)}
}

func (c *SteppingClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.mu.Unlock()

	c.Step(d)
	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}

// Sleeps returns the durations passed to After so far.
func (c *SteppingClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// Elapsed returns how far fake time has advanced.
func (c *SteppingClock) Elapsed() time.Duration {
	return c.Since(Epoch)
}
