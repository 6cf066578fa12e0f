package operation

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/metrics"
	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
	"github.com/cloudbinding/provisioner/pkg/util/retry"
)

// Waiter blocks until long-running operations finish.
type Waiter struct {
	Log     *logrus.Entry
	Checker Checker
	Backoff retry.Backoff
	Metrics metrics.Emitter
}

// Wait polls handle until the operation is Done, fails, times out or ctx is
// cancelled. A zero handle returns immediately. name describes the operation
// in errors and logs.
func (w *Waiter) Wait(ctx context.Context, name string, handle api.OperationHandle) error {
	if handle.IsZero() {
		return nil
	}

	log := w.Log.WithField("operation", name)
	log.Debugf("waiting for %s, schedule %v", handle, retry.Schedule(w.Backoff))

	last := api.OperationStatusPending
	var attempts int64
	ok, err := retry.AwaitTrue(ctx, log, w.Backoff, func(ctx context.Context) (bool, error) {
		attempts++
		status, err := w.Checker.Poll(ctx, handle)
		if err != nil {
			return false, PermanentUnlessRetryable(err)
		}
		last = status

		switch status {
		case api.OperationStatusDone:
			return true, nil
		case api.OperationStatusFailed:
			return false, retry.Permanent(w.failure(ctx, log, name, handle))
		}
		return false, nil
	})

	if w.Metrics != nil {
		w.Metrics.EmitGauge("operation.poll.attempts", attempts, map[string]string{
			"operation": name,
			"status":    string(last),
		})
	}

	var cancelled *api.CancelledError
	switch {
	case errors.As(err, &cancelled):
		cancelled.Operation = name
		cancelled.Handle = handle
		cancelled.LastStatus = last
		return cancelled
	case err != nil:
		return err
	case !ok:
		return &api.TimeoutError{
			Operation:  name,
			Handle:     handle,
			Bound:      w.Backoff.Timeout,
			LastStatus: last,
		}
	}

	log.Infof("%s finished after %d polls", name, attempts)
	return nil
}

// failure reads the error details of a failed operation. The details are
// best effort: the operation is reported failed even when they cannot be read.
func (w *Waiter) failure(ctx context.Context, log *logrus.Entry, name string, handle api.OperationHandle) error {
	err := &api.OperationFailedError{
		Operation: name,
		Handle:    handle,
		Status:    string(api.OperationStatusFailed),
	}

	op, getErr := w.Checker.Get(ctx, handle)
	if getErr != nil {
		log.Warnf("could not read failure details of %s: %v", name, getErr)
		return err
	}
	err.Status = op.Status
	err.Body = op.Error
	return err
}

// PermanentUnlessRetryable marks errors a later poll would repeat as
// permanent.
func PermanentUnlessRetryable(err error) error {
	var invalid *api.InvalidArgumentError
	if errors.As(err, &invalid) {
		return retry.Permanent(err)
	}
	if azureerrors.Is4xxError(err) && !azureerrors.IsRetryableError(err) {
		return retry.Permanent(err)
	}
	return err
}
