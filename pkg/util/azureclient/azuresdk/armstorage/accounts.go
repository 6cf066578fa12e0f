package armstorage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient"
	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
)

// AccountsClient is a minimal interface for Azure AccountsClient
type AccountsClient interface {
	// GetIfExists returns nil, nil when the storage account does not exist.
	GetIfExists(ctx context.Context, resourceGroupName string, accountName string) (*armstorage.Account, error)
	CreateAsync(ctx context.Context, resourceGroupName string, accountName string, parameters armstorage.AccountCreateParameters) (api.OperationHandle, error)
}

type accountsClient struct {
	*armstorage.AccountsClient
}

var _ AccountsClient = &accountsClient{}

// NewAccountsClient creates a new AccountsClient
func NewAccountsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (AccountsClient, error) {
	clientFactory, err := armstorage.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &accountsClient{AccountsClient: clientFactory.NewAccountsClient()}, nil
}

func (c *accountsClient) GetIfExists(ctx context.Context, resourceGroupName string, accountName string) (*armstorage.Account, error) {
	resp, err := c.GetProperties(ctx, resourceGroupName, accountName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, azureerrors.ToCloudError(err)
	}
	return &resp.Account, nil
}

func (c *accountsClient) CreateAsync(ctx context.Context, resourceGroupName string, accountName string, parameters armstorage.AccountCreateParameters) (api.OperationHandle, error) {
	_, handle, err := azureclient.Begin(ctx, func(ctx context.Context) (*runtime.Poller[armstorage.AccountsClientCreateResponse], error) {
		return c.BeginCreate(ctx, resourceGroupName, accountName, parameters, nil)
	})
	return handle, azureerrors.ToCloudError(err)
}
