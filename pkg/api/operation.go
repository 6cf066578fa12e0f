package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// HandleKind identifies how an OperationHandle is polled.
type HandleKind string

const (
	// HandleKindAsyncOperation handles point at an Azure-AsyncOperation
	// document carrying a status field.
	HandleKindAsyncOperation HandleKind = "AsyncOperation"
	// HandleKindLocation handles point at a Location URI which answers 202
	// while the operation runs.
	HandleKindLocation HandleKind = "Location"
)

// OperationHandle is an opaque reference to a long-running remote operation.
// The zero value means the operation completed synchronously and there is
// nothing to poll.
type OperationHandle struct {
	URI  string     `json:"uri,omitempty"`
	Kind HandleKind `json:"kind,omitempty"`
}

// IsZero reports whether the handle refers to no remote operation.
func (h OperationHandle) IsZero() bool {
	return h.URI == ""
}

func (h OperationHandle) String() string {
	if h.IsZero() {
		return "<synchronous>"
	}
	return string(h.Kind) + " " + h.URI
}

// OperationStatus is the normalized status of a long-running operation.
type OperationStatus string

const (
	OperationStatusPending OperationStatus = "Pending"
	OperationStatusDone    OperationStatus = "Done"
	OperationStatusFailed  OperationStatus = "Failed"
)

// IsTerminal reports whether no further polling can change the status.
func (s OperationStatus) IsTerminal() bool {
	return s == OperationStatusDone || s == OperationStatusFailed
}
