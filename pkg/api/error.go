package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CloudError represents a 4xx response from the cloud API that no fallback
// covers. It is surfaced to the caller without retry.
type CloudError struct {
	// The status code.
	StatusCode int `json:"-"`

	// An error response from the service.
	*CloudErrorBody `json:"error,omitempty"`
}

func (err *CloudError) Error() string {
	var details string
	if len(err.Details) > 0 {
		details = " Details: "
		for _, detail := range err.Details {
			details += detail.String()
		}
	}
	return fmt.Sprintf("%d: %s%s", err.StatusCode, err.CloudErrorBody, details)
}

// CloudErrorBody represents the body of a cloud error.
type CloudErrorBody struct {
	Code    string           `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	Target  string           `json:"target,omitempty"`
	Details []CloudErrorBody `json:"details,omitempty"`
}

func (b *CloudErrorBody) String() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %s", b.Code, b.Target, b.Message)
}

// CloudErrorCodes
const (
	CloudErrorCodeInternalServerError = "InternalServerError"
	CloudErrorCodeInvalidParameter    = "InvalidParameter"
	CloudErrorCodeNotFound            = "NotFound"
	CloudErrorCodeConflict            = "Conflict"
	CloudErrorCodeTooManyRequests     = "TooManyRequests"
)

// NewCloudError returns a new CloudError
func NewCloudError(statusCode int, code, target, message string, a ...interface{}) *CloudError {
	return &CloudError{
		StatusCode: statusCode,
		CloudErrorBody: &CloudErrorBody{
			Code:    code,
			Message: fmt.Sprintf(message, a...),
			Target:  target,
		},
	}
}

// ErrUnsupportedOperation is returned by operations this provider does not
// implement.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// InvalidArgumentError is returned before any remote call when a request is
// malformed.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (err *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", err.Field, err.Message)
}

// TimeoutError is returned when an operation did not reach a terminal status
// within its bound.
type TimeoutError struct {
	Operation  string
	Handle     OperationHandle
	Bound      time.Duration
	LastStatus OperationStatus
}

func (err *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %s (%s): last status %s", err.Bound, err.Operation, err.Handle, err.LastStatus)
}

// CancelledError is returned when the caller's context ends while waiting.
type CancelledError struct {
	Operation  string
	Handle     OperationHandle
	Elapsed    time.Duration
	LastStatus OperationStatus
	Err        error
}

func (err *CancelledError) Error() string {
	op := err.Operation
	if op == "" {
		op = "condition"
	}
	return fmt.Sprintf("cancelled after %s waiting for %s: %v", err.Elapsed.Round(time.Millisecond), op, err.Err)
}

func (err *CancelledError) Unwrap() error {
	return err.Err
}

// OperationFailedError is returned when a long-running operation reports a
// failed or canceled status.
type OperationFailedError struct {
	Operation string
	Handle    OperationHandle
	Status    string
	Body      *CloudErrorBody
}

func (err *OperationFailedError) Error() string {
	msg := fmt.Sprintf("%s (%s) finished with status %s", err.Operation, err.Handle, err.Status)
	if err.Body != nil {
		msg += ": " + err.Body.String()
	}
	return msg
}

// ExtractionError is returned when a completed operation's payload does not
// carry the expected fields.
type ExtractionError struct {
	Handle OperationHandle
	Reason string
}

func (err *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract result from %s: %s", err.Handle, err.Reason)
}

// PartialProvisioningError reports a failure after some resources were
// created. Created lists the resource IDs whose creation completed, in
// creation order. Submitted lists resources whose creation was accepted but
// did not complete; they may exist in a failed state. Nothing is rolled back.
type PartialProvisioningError struct {
	Created    []string
	Submitted  []string
	FailedStep string
	Err        error
}

func (err *PartialProvisioningError) Error() string {
	msg := fmt.Sprintf("provisioning failed at %s after creating [%s]", err.FailedStep, strings.Join(err.Created, ", "))
	if len(err.Submitted) > 0 {
		msg += fmt.Sprintf(" and submitting [%s]", strings.Join(err.Submitted, ", "))
	}
	return msg + fmt.Sprintf(": %v", err.Err)
}

func (err *PartialProvisioningError) Unwrap() error {
	return err.Err
}
