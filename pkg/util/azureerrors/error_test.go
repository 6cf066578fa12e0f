package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/stretchr/testify/assert"

	"github.com/cloudbinding/provisioner/pkg/api"
)

func responseError(statusCode int, code, body string) error {
	req, _ := http.NewRequest(http.MethodGet, "https://management.azure.com/subscriptions/sub/resourceGroups/rg", nil)
	return &azcore.ResponseError{
		StatusCode: statusCode,
		ErrorCode:  code,
		RawResponse: &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		},
	}
}

func TestClassification(t *testing.T) {
	for _, tt := range []struct {
		name          string
		err           error
		wantNotFound  bool
		wantConflict  bool
		want4xx       bool
		wantRetryable bool
	}{
		{
			name:          "nil",
			err:           nil,
			wantRetryable: false,
		},
		{
			name:         "azcore not found",
			err:          responseError(http.StatusNotFound, "ResourceNotFound", ""),
			wantNotFound: true,
			want4xx:      true,
		},
		{
			name:         "wrapped azcore not found",
			err:          fmt.Errorf("get: %w", responseError(http.StatusNotFound, "ResourceGroupNotFound", "")),
			wantNotFound: true,
			want4xx:      true,
		},
		{
			name:         "autorest not found",
			err:          autorest.DetailedError{StatusCode: http.StatusNotFound},
			wantNotFound: true,
			want4xx:      true,
		},
		{
			name:         "cloud error conflict",
			err:          api.NewCloudError(http.StatusConflict, api.CloudErrorCodeConflict, "", "exists"),
			wantConflict: true,
			want4xx:      true,
		},
		{
			name:    "storage account name taken is not a conflict",
			err:     responseError(http.StatusConflict, CODE_ACCOUNTTAKEN, ""),
			want4xx: true,
		},
		{
			name:          "throttled",
			err:           responseError(http.StatusTooManyRequests, "TooManyRequests", ""),
			want4xx:       true,
			wantRetryable: true,
		},
		{
			name:          "server error",
			err:           responseError(http.StatusServiceUnavailable, "", ""),
			wantRetryable: true,
		},
		{
			name:          "transport error",
			err:           errors.New("dial tcp: connection refused"),
			wantRetryable: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNotFound, IsNotFoundError(tt.err), "IsNotFoundError")
			assert.Equal(t, tt.wantConflict, IsConflictError(tt.err), "IsConflictError")
			assert.Equal(t, tt.want4xx, Is4xxError(tt.err), "Is4xxError")
			assert.Equal(t, tt.wantRetryable, IsRetryableError(tt.err), "IsRetryableError")
		})
	}
}

func TestCode(t *testing.T) {
	err := autorest.DetailedError{
		Original: &azure.RequestError{
			ServiceError: &azure.ServiceError{Code: CODE_RGNOTFOUND},
		},
	}
	assert.Equal(t, CODE_RGNOTFOUND, Code(err))
	assert.True(t, ResourceGroupNotFound(err))
	assert.True(t, ResourceGroupNotFound(api.NewCloudError(http.StatusNotFound, CODE_RGNOTFOUND, "", "gone")))
	assert.False(t, ResourceGroupNotFound(responseError(http.StatusNotFound, "NotFound", "")))
}

func TestToCloudError(t *testing.T) {
	t.Run("azcore 4xx with body", func(t *testing.T) {
		err := ToCloudError(responseError(http.StatusBadRequest, "InvalidParameter",
			`{"error":{"code":"InvalidParameter","target":"vmSize","message":"The value is not allowed."}}`))

		var cloudErr *api.CloudError
		if !errors.As(err, &cloudErr) {
			t.Fatalf("expected CloudError, got %T", err)
		}
		assert.Equal(t, "400: InvalidParameter: vmSize: The value is not allowed.", cloudErr.Error())
	})

	t.Run("azcore 4xx without body", func(t *testing.T) {
		err := ToCloudError(responseError(http.StatusForbidden, "", ""))

		var cloudErr *api.CloudError
		if !errors.As(err, &cloudErr) {
			t.Fatalf("expected CloudError, got %T", err)
		}
		assert.Equal(t, http.StatusForbidden, cloudErr.StatusCode)
		assert.Equal(t, "Forbidden", cloudErr.Code)
	})

	t.Run("5xx unchanged", func(t *testing.T) {
		in := responseError(http.StatusInternalServerError, "", "")
		assert.Same(t, in, ToCloudError(in))
	})
}
