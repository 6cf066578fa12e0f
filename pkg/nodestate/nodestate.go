package nodestate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
)

var provisioningStateToNodeStatus = map[api.ProvisioningState]api.NodeStatus{
	api.ProvisioningStateAccepted:  api.NodeStatusPending,
	api.ProvisioningStateReady:     api.NodeStatusPending,
	api.ProvisioningStateRunning:   api.NodeStatusPending,
	api.ProvisioningStateCreating:  api.NodeStatusPending,
	api.ProvisioningStateUpdating:  api.NodeStatusPending,
	api.ProvisioningStateSucceeded: api.NodeStatusRunning,
	api.ProvisioningStateFailed:    api.NodeStatusError,
	api.ProvisioningStateCanceled:  api.NodeStatusTerminated,
	api.ProvisioningStateDeleting:  api.NodeStatusTerminated,
	api.ProvisioningStateDeleted:   api.NodeStatusTerminated,
}

var instanceStatusToNodeStatus = map[api.InstanceStatus]api.NodeStatus{
	api.InstanceStatusStarting:     api.NodeStatusPending,
	api.InstanceStatusRunning:      api.NodeStatusRunning,
	api.InstanceStatusStopping:     api.NodeStatusSuspended,
	api.InstanceStatusStopped:      api.NodeStatusSuspended,
	api.InstanceStatusDeallocating: api.NodeStatusSuspended,
	api.InstanceStatusDeallocated:  api.NodeStatusSuspended,
}

// FromProvisioningState maps a provisioning state. Unknown states map to
// NodeStatusUnrecognized.
func FromProvisioningState(state api.ProvisioningState) api.NodeStatus {
	if status, ok := provisioningStateToNodeStatus[state]; ok {
		return status
	}
	return api.NodeStatusUnrecognized
}

// FromInstanceStatus maps a power state. Unknown states map to
// NodeStatusUnrecognized.
func FromInstanceStatus(status api.InstanceStatus) api.NodeStatus {
	if s, ok := instanceStatusToNodeStatus[status]; ok {
		return s
	}
	return api.NodeStatusUnrecognized
}

// Map returns the node status for a provisioning state and an optional
// instance status. The instance status wins when present.
func Map(state api.ProvisioningState, instance *api.InstanceStatus) api.NodeStatus {
	if instance != nil {
		return FromInstanceStatus(*instance)
	}
	return FromProvisioningState(state)
}

// InstanceStatusOf returns the power state in the instance view, or nil when
// the view carries none.
func InstanceStatusOf(view *armcompute.VirtualMachineInstanceView) *api.InstanceStatus {
	if view == nil {
		return nil
	}
	for _, s := range view.Statuses {
		if s == nil || s.Code == nil {
			continue
		}
		if status, ok := api.ParseInstanceStatus(*s.Code); ok {
			return &status
		}
	}
	return nil
}

// FromVirtualMachine converts a virtual machine, ideally read with its
// instance view, into a Node.
func FromVirtualMachine(vm *armcompute.VirtualMachine) *api.Node {
	node := &api.Node{
		Name:       ptr.Deref(vm.Name, ""),
		ResourceID: ptr.Deref(vm.ID, ""),
		Location:   ptr.Deref(vm.Location, ""),
		Tags:       map[string]string{},
	}

	if r, err := arm.ParseResourceID(node.ResourceID); err == nil {
		node.ID = api.NodeID(r.ResourceGroupName, r.Name)
		node.Network.ResourceGroup = r.ResourceGroupName
	}

	for k, v := range vm.Tags {
		node.Tags[k] = ptr.Deref(v, "")
	}
	node.Group = node.Tags[TagGroup]

	if vm.Properties != nil {
		node.ProvisioningState = api.ParseProvisioningState(ptr.Deref(vm.Properties.ProvisioningState, ""))
		if vm.Properties.HardwareProfile != nil && vm.Properties.HardwareProfile.VMSize != nil {
			node.VMSize = string(*vm.Properties.HardwareProfile.VMSize)
		}
		if instance := InstanceStatusOf(vm.Properties.InstanceView); instance != nil {
			node.InstanceStatus = *instance
		}
	} else {
		node.ProvisioningState = api.ProvisioningStateUnrecognized
	}

	var instance *api.InstanceStatus
	if node.InstanceStatus != "" {
		instance = &node.InstanceStatus
	}
	node.Status = Map(node.ProvisioningState, instance)

	return node
}

// TagGroup is the tag carrying a node's group name.
const TagGroup = "group"

