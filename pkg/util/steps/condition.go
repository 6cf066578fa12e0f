package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/util/retry"
)

// conditionFunction is a function that takes a context and returns whether the
// condition has been met and an error.
//
// Suitable for polling external sources for readiness. Errors are retried
// unless wrapped with retry.Permanent.
type conditionFunction func(context.Context) (bool, error)

// Condition returns a Step which polls `f` on the given backoff until it
// returns true. When the backoff times out, the error returned by `onTimeout`
// is returned, or a generic timeout error when `onTimeout` is nil.
func Condition(f conditionFunction, backoff retry.Backoff, onTimeout func() error) conditionStep {
	return conditionStep{
		f:         f,
		backoff:   backoff,
		onTimeout: onTimeout,
	}
}

type conditionStep struct {
	f         conditionFunction
	backoff   retry.Backoff
	onTimeout func() error
}

func (c conditionStep) run(ctx context.Context, log *logrus.Entry) error {
	ok, err := retry.AwaitTrue(ctx, log, c.backoff, retry.ConditionFunc(c.f))
	if err != nil {
		return err
	}
	if !ok {
		if c.onTimeout != nil {
			return c.onTimeout()
		}
		return fmt.Errorf("%s timed out after %s", c, c.backoff.Timeout)
	}
	return nil
}

func (c conditionStep) String() string {
	return fmt.Sprintf("[Condition %s, timeout %s]", FriendlyName(c.f), c.backoff.Timeout)
}

func (c conditionStep) MetricsTopic() string {
	return fmt.Sprintf("condition.%s", shortName(c.f))
}
