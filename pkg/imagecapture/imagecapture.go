package imagecapture

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/cloudbinding/provisioner/pkg/$GOPACKAGE Workflow

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/env"
	"github.com/cloudbinding/provisioner/pkg/metrics"
	"github.com/cloudbinding/provisioner/pkg/operation"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient/azuresdk/armcompute"
	"github.com/cloudbinding/provisioner/pkg/util/azureclient/azuresdk/armstorage"
	"github.com/cloudbinding/provisioner/pkg/util/retry"
)

// DefaultContainer receives captured VHDs when the request names no
// container.
const DefaultContainer = "images"

// CaptureBackoff bounds the wait for a capture's output. It does not depend
// on the configured operation timeout.
var CaptureBackoff = retry.Backoff{
	Timeout:       60 * time.Second,
	InitialPeriod: time.Second,
	MaxPeriod:     5 * time.Second,
}

// Workflow turns a virtual machine into a reusable image.
type Workflow interface {
	Capture(ctx context.Context, req *api.ImageCaptureRequest) (*api.ImageCaptureResult, error)
	DeleteImage(ctx context.Context, id string) error
}

type waiter interface {
	Wait(ctx context.Context, name string, handle api.OperationHandle) error
}

type workflow struct {
	log       *logrus.Entry
	namespace string
	m         metrics.Emitter

	virtualMachines armcompute.VirtualMachinesClient
	accounts        armstorage.AccountsClient
	checker         operation.Checker
	waiter          waiter

	captureBackoff retry.Backoff
}

// New returns a Workflow for the subscription configured in _env.
func New(log *logrus.Entry, _env env.Core, m metrics.Emitter) (Workflow, error) {
	credential, err := _env.NewTokenCredential()
	if err != nil {
		return nil, err
	}

	options := _env.ArmClientOptions()
	subscriptionID := _env.SubscriptionID()

	virtualMachines, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	accounts, err := armstorage.NewAccountsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	checker, err := operation.NewChecker(log, credential, options)
	if err != nil {
		return nil, err
	}

	return &workflow{
		log:       log,
		namespace: _env.Config().ImageNamespace,
		m:         m,

		virtualMachines: virtualMachines,
		accounts:        accounts,
		checker:         checker,
		waiter: &operation.Waiter{
			Log:     log,
			Checker: checker,
			Backoff: _env.Config().OperationBackoff(),
			Metrics: m,
		},

		captureBackoff: CaptureBackoff,
	}, nil
}

// DeleteImage is not supported: captured VHDs are owned by the storage
// account and outlive this workflow.
func (w *workflow) DeleteImage(ctx context.Context, id string) error {
	return api.ErrUnsupportedOperation
}
