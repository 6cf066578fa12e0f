package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"

	"github.com/cloudbinding/provisioner/pkg/api"
)

const (
	CODE_CONFLICT     = "Conflict"
	CODE_RGNOTFOUND   = "ResourceGroupNotFound"
	CODE_ANOTHEROP    = "AnotherOperationInProgress"
	CODE_ACCOUNTTAKEN = "StorageAccountAlreadyTaken"
)

// StatusCode returns the HTTP status code carried by err, or 0.
func StatusCode(err error) int {
	var cloudErr *api.CloudError
	if errors.As(err, &cloudErr) {
		return cloudErr.StatusCode
	}

	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if code, ok := detailedErr.StatusCode.(int); ok {
			return code
		}
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode
	}

	return 0
}

// Code returns the ARM error code carried by err, or "".
func Code(err error) string {
	var cloudErr *api.CloudError
	if errors.As(err, &cloudErr) && cloudErr.CloudErrorBody != nil {
		return cloudErr.Code
	}

	var detailedErr autorest.DetailedError
	if errors.As(err, &detailedErr) {
		if serviceErr, ok := detailedErr.Original.(*azure.ServiceError); ok {
			return serviceErr.Code
		}
		if requestErr, ok := detailedErr.Original.(*azure.RequestError); ok && requestErr.ServiceError != nil {
			return requestErr.ServiceError.Code
		}
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.ErrorCode
	}

	return ""
}

func IsNotFoundError(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsConflictError returns true if the remote side rejected a create because
// the resource or a concurrent operation on it already exists.
func IsConflictError(err error) bool {
	if StatusCode(err) == http.StatusConflict {
		switch Code(err) {
		case CODE_ACCOUNTTAKEN:
			return false
		}
		return true
	}
	return Code(err) == CODE_ANOTHEROP
}

// ResourceGroupNotFound returns true if the error is an ResourceGroupNotFound error
func ResourceGroupNotFound(err error) bool {
	return Code(err) == CODE_RGNOTFOUND
}

// Is4xxError returns true if the error is a 4xx response
func Is4xxError(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}

// IsRetryableError returns true for errors a later attempt may not repeat:
// throttling, server side failures and transport errors without a response.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	code := StatusCode(err)
	switch {
	case code == 0:
		return true
	case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return true
	case code >= 500:
		return true
	}
	return false
}

// ToCloudError converts a 4xx Azure SDK error into an *api.CloudError. Other
// errors are returned unchanged.
func ToCloudError(err error) error {
	if err == nil || !Is4xxError(err) {
		return err
	}

	var cloudErr *api.CloudError
	if errors.As(err, &cloudErr) {
		return err
	}

	ce := &api.CloudError{
		StatusCode: StatusCode(err),
		CloudErrorBody: &api.CloudErrorBody{
			Code:    Code(err),
			Message: err.Error(),
		},
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) && responseError.RawResponse != nil {
		if body := responseBody(responseError.RawResponse); body != nil && body.Message != "" {
			ce.CloudErrorBody = body
		}
	}
	if ce.Code == "" {
		ce.Code = http.StatusText(ce.StatusCode)
	}

	return ce
}

func responseBody(resp *http.Response) *api.CloudErrorBody {
	if resp.Body == nil {
		return nil
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var ce api.CloudError
	if json.Unmarshal(b, &ce) != nil {
		return nil
	}
	return ce.CloudErrorBody
}
