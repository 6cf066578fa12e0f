package armresources

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroupsClient is a minimal interface for Azure ResourceGroupsClient
type ResourceGroupsClient interface {
	ResourceGroupsClientAddons
}

type resourceGroupsClient struct {
	*armresources.ResourceGroupsClient
}

var _ ResourceGroupsClient = &resourceGroupsClient{}

// NewResourceGroupsClient creates a new ResourceGroupsClient
func NewResourceGroupsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ResourceGroupsClient, error) {
	client, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &resourceGroupsClient{ResourceGroupsClient: client}, nil
}
