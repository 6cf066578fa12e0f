package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/metrics"
)

// FriendlyName returns a "friendly" stringified name of the given func.
func FriendlyName(f interface{}) string {
	return strings.TrimSuffix(runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name(), "-fm")
}

// shortName returns the function or method name without its package and
// receiver.
func shortName(f interface{}) string {
	name := FriendlyName(f)
	return name[strings.LastIndexByte(name, '.')+1:]
}

// Step is the interface for steps that Runner can execute.
type Step interface {
	run(ctx context.Context, log *logrus.Entry) error
	String() string
	MetricsTopic() string
}

// Run executes the provided steps in order until one fails or all steps
// are completed. Errors from failed steps are returned directly. The
// duration of every successful step is emitted to m when m is not nil.
func Run(ctx context.Context, log *logrus.Entry, m metrics.Emitter, steps []Step) error {
	for _, step := range steps {
		log.Infof("running step %s", step)
		startTime := time.Now()

		err := step.run(ctx, log)
		if err != nil {
			log.Errorf("step %s encountered error: %s", step, err.Error())
			return err
		}

		if m != nil {
			m.EmitFloat("step.duration", time.Since(startTime).Seconds(), map[string]string{
				"step": step.MetricsTopic(),
			})
		}
	}
	return nil
}
