package armresources

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
)

// ResourceGroupsClientAddons contains addons for ResourceGroupsClient
type ResourceGroupsClientAddons interface {
	// GetIfExists returns nil, nil when the resource group does not exist.
	GetIfExists(ctx context.Context, resourceGroupName string) (*armresources.ResourceGroup, error)
	// Create creates or updates the resource group. Resource group writes
	// are synchronous.
	Create(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup) (*armresources.ResourceGroup, error)
}

func (c *resourceGroupsClient) GetIfExists(ctx context.Context, resourceGroupName string) (*armresources.ResourceGroup, error) {
	resp, err := c.Get(ctx, resourceGroupName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.ResourceGroup, nil
}

func (c *resourceGroupsClient) Create(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup) (*armresources.ResourceGroup, error) {
	resp, err := c.CreateOrUpdate(ctx, resourceGroupName, parameters, nil)
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.ResourceGroup, nil
}
