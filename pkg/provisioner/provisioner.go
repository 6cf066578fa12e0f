package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/cloudbinding/provisioner/pkg/$GOPACKAGE Provisioner

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/env"
	"github.com/cloudbinding/provisioner/pkg/metrics"
	"github.com/cloudbinding/provisioner/pkg/operation"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient/azuresdk/armcompute"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient/azuresdk/armnetwork"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient/azuresdk/armresources"
	"github.com/cloudbinding/provisioner/pkg/util/uuid"
)

// Provisioner creates, reads and destroys nodes.
//
// Creation is best-effort forward provisioning: resources created before a
// failure are left in place and reported through
// *api.PartialProvisioningError. Cleaning them up is the caller's job.
type Provisioner interface {
	CreateNodes(ctx context.Context, req *api.NodeRequest) ([]*api.Node, error)
	GetNode(ctx context.Context, id string) (*api.Node, error)
	DestroyNode(ctx context.Context, id string) error
}

type waiter interface {
	Wait(ctx context.Context, name string, handle api.OperationHandle) error
}

type provisioner struct {
	log            *logrus.Entry
	config         *env.Config
	subscriptionID string
	m              metrics.Emitter
	uuid           uuid.Generator

	resourceGroups  armresources.ResourceGroupsClient
	virtualNetworks armnetwork.VirtualNetworksClient
	subnets         armnetwork.SubnetsClient
	interfaces      armnetwork.InterfacesClient
	virtualMachines armcompute.VirtualMachinesClient

	waiter waiter
}

// New returns a Provisioner talking to the subscription configured in _env.
func New(log *logrus.Entry, _env env.Core, m metrics.Emitter) (Provisioner, error) {
	credential, err := _env.NewTokenCredential()
	if err != nil {
		return nil, err
	}

	options := _env.ArmClientOptions()
	subscriptionID := _env.SubscriptionID()

	resourceGroups, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	network, err := armnetwork.NewClients(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	virtualMachines, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	checker, err := operation.NewChecker(log, credential, options)
	if err != nil {
		return nil, err
	}

	return &provisioner{
		log:            log,
		config:         _env.Config(),
		subscriptionID: subscriptionID,
		m:              m,
		uuid:           uuid.DefaultGenerator,

		resourceGroups:  resourceGroups,
		virtualNetworks: network.VirtualNetworks,
		subnets:         network.Subnets,
		interfaces:      network.Interfaces,
		virtualMachines: virtualMachines,

		waiter: &operation.Waiter{
			Log:     log,
			Checker: checker,
			Backoff: _env.Config().OperationBackoff(),
			Metrics: m,
		},
	}, nil
}
