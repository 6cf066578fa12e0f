package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/cloudbinding/provisioner/pkg/api"
)

const (
	headerAsyncOperation = "Azure-AsyncOperation"
	headerLocation       = "Location"
)

// HandleFromResponse returns the operation handle advertised by the initial
// response of a long-running operation. The zero handle means the response
// was already terminal.
func HandleFromResponse(resp *http.Response) api.OperationHandle {
	if resp == nil {
		return api.OperationHandle{}
	}
	if uri := resp.Header.Get(headerAsyncOperation); uri != "" {
		return api.OperationHandle{URI: uri, Kind: api.HandleKindAsyncOperation}
	}
	if resp.StatusCode == http.StatusAccepted {
		if uri := resp.Header.Get(headerLocation); uri != "" {
			return api.OperationHandle{URI: uri, Kind: api.HandleKindLocation}
		}
	}
	return api.OperationHandle{}
}

// Begin starts a long-running operation and returns its poller together with
// the handle read from the initial response. Polling is left to the caller.
func Begin[T any](ctx context.Context, begin func(context.Context) (*runtime.Poller[T], error)) (*runtime.Poller[T], api.OperationHandle, error) {
	var resp *http.Response
	poller, err := begin(runtime.WithCaptureResponse(ctx, &resp))
	if err != nil {
		return nil, api.OperationHandle{}, err
	}
	return poller, HandleFromResponse(resp), nil
}
