package armnetwork

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient"
	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
)

// InterfacesClient is a minimal interface for azure InterfacesClient
type InterfacesClient interface {
	GetIfExists(ctx context.Context, resourceGroupName string, networkInterfaceName string) (*armnetwork.Interface, error)
	CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, networkInterfaceName string, parameters armnetwork.Interface) (api.OperationHandle, error)
	// DeleteAsync returns the zero handle when the interface does not exist.
	DeleteAsync(ctx context.Context, resourceGroupName string, networkInterfaceName string) (api.OperationHandle, error)
}

type interfacesClient struct {
	*armnetwork.InterfacesClient
}

var _ InterfacesClient = &interfacesClient{}

func (c *interfacesClient) GetIfExists(ctx context.Context, resourceGroupName string, networkInterfaceName string) (*armnetwork.Interface, error) {
	resp, err := c.Get(ctx, resourceGroupName, networkInterfaceName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.Interface, nil
}

func (c *interfacesClient) CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, networkInterfaceName string, parameters armnetwork.Interface) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armnetwork.InterfacesClientCreateOrUpdateResponse], error) {
		return c.BeginCreateOrUpdate(ctx, resourceGroupName, networkInterfaceName, parameters, nil)
	})
	return handle, azureerrors.ToCloudError(err)
}

func (c *interfacesClient) DeleteAsync(ctx context.Context, resourceGroupName string, networkInterfaceName string) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armnetwork.InterfacesClientDeleteResponse], error) {
		return c.BeginDelete(ctx, resourceGroupName, networkInterfaceName, nil)
	})
	if azureerrors.IsNotFoundError(err) {
		return api.OperationHandle{}, nil
	}
	return handle, azureerrors.ToCloudError(err)
}
