package operation

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/api"
)

// Operation is the status document of a long-running ARM operation.
type Operation struct {
	ID         string               `json:"id,omitempty"`
	Name       string               `json:"name,omitempty"`
	Status     string               `json:"status"`
	StartTime  *time.Time           `json:"startTime,omitempty"`
	EndTime    *time.Time           `json:"endTime,omitempty"`
	Properties *OperationProperties `json:"properties,omitempty"`
	Error      *api.CloudErrorBody  `json:"error,omitempty"`
}

// OperationProperties holds the operation's result, when the resource
// provider returns one.
type OperationProperties struct {
	Output json.RawMessage `json:"output,omitempty"`
}

// Output returns the raw result payload, or nil.
func (o *Operation) Output() json.RawMessage {
	if o == nil || o.Properties == nil {
		return nil
	}
	return o.Properties.Output
}

var pendingStatuses = map[string]struct{}{
	"":           {},
	"inprogress": {},
	"notstarted": {},
	"accepted":   {},
	"running":    {},
	"creating":   {},
	"updating":   {},
	"deleting":   {},
}

var failedStatuses = map[string]struct{}{
	"failed":    {},
	"canceled":  {},
	"cancelled": {},
}

// ClassifyStatus maps a remote status string to an OperationStatus. known is
// false for strings outside the documented set; those are Pending.
func ClassifyStatus(status string) (s api.OperationStatus, known bool) {
	status = strings.ToLower(status)
	if status == "succeeded" {
		return api.OperationStatusDone, true
	}
	if _, ok := failedStatuses[status]; ok {
		return api.OperationStatusFailed, true
	}
	_, ok := pendingStatuses[status]
	return api.OperationStatusPending, ok
}

// Classify returns the OperationStatus of op. Unrecognized statuses are
// logged and treated as Pending.
func Classify(log *logrus.Entry, op *Operation) api.OperationStatus {
	status, known := ClassifyStatus(op.Status)
	if !known {
		log.Warnf("operation %s reported unrecognized status %q, treating as pending", op.ID, op.Status)
	}
	return status
}
