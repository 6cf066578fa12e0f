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

// VirtualNetworksClient is a minimal interface for Azure VirtualNetworksClient
type VirtualNetworksClient interface {
	// GetIfExists returns nil, nil when the virtual network does not exist.
	GetIfExists(ctx context.Context, resourceGroupName string, virtualNetworkName string) (*armnetwork.VirtualNetwork, error)
	// CreateOrUpdateAsync starts the write and returns without polling.
	CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, virtualNetworkName string, parameters armnetwork.VirtualNetwork) (api.OperationHandle, error)
}

type virtualNetworksClient struct {
	*armnetwork.VirtualNetworksClient
}

var _ VirtualNetworksClient = &virtualNetworksClient{}

func (c *virtualNetworksClient) GetIfExists(ctx context.Context, resourceGroupName string, virtualNetworkName string) (*armnetwork.VirtualNetwork, error) {
	resp, err := c.Get(ctx, resourceGroupName, virtualNetworkName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.VirtualNetwork, nil
}

func (c *virtualNetworksClient) CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, virtualNetworkName string, parameters armnetwork.VirtualNetwork) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armnetwork.VirtualNetworksClientCreateOrUpdateResponse], error) {
		return c.BeginCreateOrUpdate(ctx, resourceGroupName, virtualNetworkName, parameters, nil)
	})
	return handle, azureerrors.ToCloudError(err)
}
