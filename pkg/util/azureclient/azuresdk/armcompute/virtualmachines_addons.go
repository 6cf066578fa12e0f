package armcompute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient"
	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
)

// VirtualMachinesClientAddons contains addons for VirtualMachinesClient
type VirtualMachinesClientAddons interface {
	// GetIfExists returns the virtual machine with its instance view, or
	// nil, nil when it does not exist.
	GetIfExists(ctx context.Context, resourceGroupName string, vmName string) (*armcompute.VirtualMachine, error)
	CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachine) (api.OperationHandle, error)
	// DeleteAsync returns the zero handle when the virtual machine does not
	// exist.
	DeleteAsync(ctx context.Context, resourceGroupName string, vmName string) (api.OperationHandle, error)
	DeallocateAsync(ctx context.Context, resourceGroupName string, vmName string) (api.OperationHandle, error)
	// CaptureAsync starts a capture. When the service answers synchronously
	// the handle is zero and the result is returned directly.
	CaptureAsync(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachineCaptureParameters) (api.OperationHandle, *armcompute.VirtualMachineCaptureResult, error)
}

func (c *virtualMachinesClient) GetIfExists(ctx context.Context, resourceGroupName string, vmName string) (*armcompute.VirtualMachine, error) {
	resp, err := c.Get(ctx, resourceGroupName, vmName, &armcompute.VirtualMachinesClientGetOptions{
		Expand: ptr.To(armcompute.InstanceViewTypesInstanceView),
	})
	if azureerrors.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.VirtualMachine, nil
}

func (c *virtualMachinesClient) CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachine) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse], error) {
		return c.BeginCreateOrUpdate(ctx, resourceGroupName, vmName, parameters, nil)
	})
	return handle, azureerrors.ToCloudError(err)
}

func (c *virtualMachinesClient) DeleteAsync(ctx context.Context, resourceGroupName string, vmName string) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armcompute.VirtualMachinesClientDeleteResponse], error) {
		return c.BeginDelete(ctx, resourceGroupName, vmName, nil)
	})
	if azureerrors.IsNotFoundError(err) {
		return api.OperationHandle{}, nil
	}
	return handle, azureerrors.ToCloudError(err)
}

func (c *virtualMachinesClient) DeallocateAsync(ctx context.Context, resourceGroupName string, vmName string) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armcompute.VirtualMachinesClientDeallocateResponse], error) {
		return c.BeginDeallocate(ctx, resourceGroupName, vmName, nil)
	})
	return handle, azureerrors.ToCloudError(err)
}

func (c *virtualMachinesClient) CaptureAsync(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachineCaptureParameters) (api.OperationHandle, *armcompute.VirtualMachineCaptureResult, error) {
	poller, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armcompute.VirtualMachinesClientCaptureResponse], error) {
		return c.BeginCapture(ctx, resourceGroupName, vmName, parameters, nil)
	})
	if err != nil {
		return api.OperationHandle{}, nil, azureerrors.ToCloudError(err)
	}
	if !handle.IsZero() || !poller.Done() {
		return handle, nil, nil
	}

	resp, err := poller.Result(ctx)
	if err != nil {
		return api.OperationHandle{}, nil, azureerrors.ToCloudError(err)
	}
	return handle, &resp.VirtualMachineCaptureResult, nil
}
