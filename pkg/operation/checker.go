package operation

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/cloudbinding/provisioner/pkg/$GOPACKAGE Checker

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	armruntime "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
)

const (
	moduleName    = "github.com/cloudbinding/provisioner/pkg/operation"
	moduleVersion = "v1.0.0"
)

// Checker reads the status of long-running operations.
type Checker interface {
	// Poll returns the normalized status of the operation.
	Poll(ctx context.Context, handle api.OperationHandle) (api.OperationStatus, error)
	// Get returns the operation's status document.
	Get(ctx context.Context, handle api.OperationHandle) (*Operation, error)
}

type checker struct {
	log *logrus.Entry
	pl  runtime.Pipeline
}

var _ Checker = &checker{}

// NewChecker returns a Checker that issues authenticated GETs against
// operation handles.
func NewChecker(log *logrus.Entry, credential azcore.TokenCredential, options *arm.ClientOptions) (Checker, error) {
	pl, err := armruntime.NewPipeline(moduleName, moduleVersion, credential, runtime.PipelineOptions{}, options)
	if err != nil {
		return nil, err
	}
	return NewCheckerWithPipeline(log, pl), nil
}

// NewCheckerWithPipeline returns a Checker using the given pipeline.
func NewCheckerWithPipeline(log *logrus.Entry, pl runtime.Pipeline) Checker {
	return &checker{log: log, pl: pl}
}

func (c *checker) Poll(ctx context.Context, handle api.OperationHandle) (api.OperationStatus, error) {
	op, err := c.Get(ctx, handle)
	if err != nil {
		return "", err
	}
	return Classify(c.log, op), nil
}

func (c *checker) Get(ctx context.Context, handle api.OperationHandle) (*Operation, error) {
	if handle.IsZero() {
		return nil, &api.InvalidArgumentError{Field: "handle", Message: "operation handle is empty"}
	}

	req, err := runtime.NewRequest(ctx, http.MethodGet, handle.URI)
	if err != nil {
		return nil, &api.InvalidArgumentError{Field: "handle", Message: err.Error()}
	}
	req.Raw().Header.Set("Accept", "application/json")

	resp, err := c.pl.Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent) {
		return nil, azureerrors.ToCloudError(runtime.NewResponseError(resp))
	}

	if handle.Kind == api.HandleKindLocation {
		return locationOperation(resp)
	}

	op := &Operation{}
	if err := runtime.UnmarshalAsJSON(resp, op); err != nil {
		return nil, err
	}
	return op, nil
}

// locationOperation synthesizes a status document for Location polling,
// where 202 means the operation is still running and the final response
// carries the result itself.
func locationOperation(resp *http.Response) (*Operation, error) {
	if resp.StatusCode == http.StatusAccepted {
		return &Operation{Status: "InProgress"}, nil
	}

	op := &Operation{Status: "Succeeded"}
	body, err := runtime.Payload(resp)
	if err != nil {
		return nil, err
	}
	if len(body) > 0 {
		op.Properties = &OperationProperties{Output: body}
	}
	return op, nil
}
