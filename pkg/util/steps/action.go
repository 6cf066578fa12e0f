package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// actionFunction advances a provisioning state machine by one transition.
type actionFunction func(context.Context) error

// Action returns a Step that calls f once. Errors from f are returned
// unchanged.
func Action(f actionFunction) actionStep {
	return actionStep{f: f}
}

type actionStep struct {
	f actionFunction
}

func (s actionStep) run(ctx context.Context, _ *logrus.Entry) error {
	return s.f(ctx)
}

func (s actionStep) String() string {
	return fmt.Sprintf("[Action %s]", FriendlyName(s.f))
}

func (s actionStep) MetricsTopic() string {
	return fmt.Sprintf("action.%s", shortName(s.f))
}
