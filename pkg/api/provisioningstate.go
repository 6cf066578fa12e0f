package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
)

// ProvisioningState is the provisioning state ARM reports for a resource.
type ProvisioningState string

const (
	ProvisioningStateAccepted     ProvisioningState = "Accepted"
	ProvisioningStateReady        ProvisioningState = "Ready"
	ProvisioningStateRunning      ProvisioningState = "Running"
	ProvisioningStateCreating     ProvisioningState = "Creating"
	ProvisioningStateUpdating     ProvisioningState = "Updating"
	ProvisioningStateSucceeded    ProvisioningState = "Succeeded"
	ProvisioningStateFailed       ProvisioningState = "Failed"
	ProvisioningStateCanceled     ProvisioningState = "Canceled"
	ProvisioningStateDeleting     ProvisioningState = "Deleting"
	ProvisioningStateDeleted      ProvisioningState = "Deleted"
	ProvisioningStateUnrecognized ProvisioningState = "Unrecognized"
)

var provisioningStates = []ProvisioningState{
	ProvisioningStateAccepted,
	ProvisioningStateReady,
	ProvisioningStateRunning,
	ProvisioningStateCreating,
	ProvisioningStateUpdating,
	ProvisioningStateSucceeded,
	ProvisioningStateFailed,
	ProvisioningStateCanceled,
	ProvisioningStateDeleting,
	ProvisioningStateDeleted,
}

// ProvisioningStates returns every known provisioning state, excluding
// ProvisioningStateUnrecognized.
func ProvisioningStates() []ProvisioningState {
	return append([]ProvisioningState(nil), provisioningStates...)
}

// ParseProvisioningState matches s case-insensitively against the known
// states. "Cancelled" is accepted as a spelling of Canceled. Anything else is
// ProvisioningStateUnrecognized.
func ParseProvisioningState(s string) ProvisioningState {
	if strings.EqualFold(s, "Cancelled") {
		return ProvisioningStateCanceled
	}
	for _, state := range provisioningStates {
		if strings.EqualFold(s, string(state)) {
			return state
		}
	}
	return ProvisioningStateUnrecognized
}

// InstanceStatus is the power state of a virtual machine, taken from the
// PowerState/* code of its instance view.
type InstanceStatus string

const (
	InstanceStatusStarting     InstanceStatus = "Starting"
	InstanceStatusRunning      InstanceStatus = "Running"
	InstanceStatusStopping     InstanceStatus = "Stopping"
	InstanceStatusStopped      InstanceStatus = "Stopped"
	InstanceStatusDeallocating InstanceStatus = "Deallocating"
	InstanceStatusDeallocated  InstanceStatus = "Deallocated"
	InstanceStatusUnrecognized InstanceStatus = "Unrecognized"
)

var instanceStatuses = []InstanceStatus{
	InstanceStatusStarting,
	InstanceStatusRunning,
	InstanceStatusStopping,
	InstanceStatusStopped,
	InstanceStatusDeallocating,
	InstanceStatusDeallocated,
}

// InstanceStatuses returns every known instance status, excluding
// InstanceStatusUnrecognized.
func InstanceStatuses() []InstanceStatus {
	return append([]InstanceStatus(nil), instanceStatuses...)
}

const powerStatePrefix = "PowerState/"

// ParseInstanceStatus parses an instance view status code such as
// "PowerState/running". ok is false when code is not a power state code.
func ParseInstanceStatus(code string) (status InstanceStatus, ok bool) {
	if len(code) < len(powerStatePrefix) || !strings.EqualFold(code[:len(powerStatePrefix)], powerStatePrefix) {
		return "", false
	}
	value := code[len(powerStatePrefix):]
	for _, s := range instanceStatuses {
		if strings.EqualFold(value, string(s)) {
			return s, true
		}
	}
	return InstanceStatusUnrecognized, true
}
