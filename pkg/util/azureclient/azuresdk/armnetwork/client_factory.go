package armnetwork

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

// Clients groups the network clients used to wire nodes into a subnet.
type Clients struct {
	VirtualNetworks VirtualNetworksClient
	Subnets         SubnetsClient
	Interfaces      InterfacesClient
}

// NewClients creates the network clients from a single client factory.
func NewClients(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Clients, error) {
	clientFactory, err := armnetwork.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Clients{
		VirtualNetworks: &virtualNetworksClient{VirtualNetworksClient: clientFactory.NewVirtualNetworksClient()},
		Subnets:         &subnetsClient{SubnetsClient: clientFactory.NewSubnetsClient()},
		Interfaces:      &interfacesClient{InterfacesClient: clientFactory.NewInterfacesClient()},
	}, nil
}
