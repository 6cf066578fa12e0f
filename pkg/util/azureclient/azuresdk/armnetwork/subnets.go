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

// SubnetsClient is a minimal interface for Azure SubnetsClient
type SubnetsClient interface {
	GetIfExists(ctx context.Context, resourceGroupName string, virtualNetworkName string, subnetName string) (*armnetwork.Subnet, error)
	CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, virtualNetworkName string, subnetName string, parameters armnetwork.Subnet) (api.OperationHandle, error)
}

type subnetsClient struct {
	*armnetwork.SubnetsClient
}

var _ SubnetsClient = &subnetsClient{}

func (c *subnetsClient) GetIfExists(ctx context.Context, resourceGroupName string, virtualNetworkName string, subnetName string) (*armnetwork.Subnet, error) {
	resp, err := c.Get(ctx, resourceGroupName, virtualNetworkName, subnetName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.Subnet, nil
}

func (c *subnetsClient) CreateOrUpdateAsync(ctx context.Context, resourceGroupName string, virtualNetworkName string, subnetName string, parameters armnetwork.Subnet) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armnetwork.SubnetsClientCreateOrUpdateResponse], error) {
		return c.BeginCreateOrUpdate(ctx, resourceGroupName, virtualNetworkName, subnetName, parameters, nil)
	})
	return handle, azureerrors.ToCloudError(err)
}
