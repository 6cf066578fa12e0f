package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/sirupsen/logrus"
)

// Environment pairs the go-autorest description of an Azure cloud with the
// azcore configuration used to build clients for it.
type Environment struct {
	azure.Environment
	Cloud cloud.Configuration
	// See https://learn.microsoft.com/EN-US/azure/active-directory/develop/scopes-oidc#the-default-scope
	ResourceManagerScope string
}

var (
	PublicCloud       = newEnvironment(azure.PublicCloud, cloud.AzurePublic)
	USGovernmentCloud = newEnvironment(azure.USGovernmentCloud, cloud.AzureGovernment)
	ChinaCloud        = newEnvironment(azure.ChinaCloud, cloud.AzureChina)
)

func newEnvironment(env azure.Environment, cloudConfig cloud.Configuration) Environment {
	return Environment{
		Environment:          env,
		Cloud:                cloudConfig,
		ResourceManagerScope: env.ResourceManagerEndpoint + "/.default",
	}
}

// EnvironmentFromName returns the Environment corresponding to the common name
// specified, for example AzurePublicCloud.
func EnvironmentFromName(name string) (Environment, error) {
	env, err := azure.EnvironmentFromName(name)
	if err != nil {
		return Environment{}, fmt.Errorf("cloud environment %q is unsupported: %w", name, err)
	}

	switch strings.ToUpper(env.Name) {
	case strings.ToUpper(azure.PublicCloud.Name):
		return PublicCloud, nil
	case strings.ToUpper(azure.USGovernmentCloud.Name):
		return USGovernmentCloud, nil
	case strings.ToUpper(azure.ChinaCloud.Name):
		return ChinaCloud, nil
	}

	return newEnvironment(env, cloud.Configuration{
		ActiveDirectoryAuthorityHost: env.ActiveDirectoryEndpoint,
		Services: map[cloud.ServiceName]cloud.ServiceConfiguration{
			cloud.ResourceManager: {
				Audience: env.TokenAudience,
				Endpoint: env.ResourceManagerEndpoint,
			},
		},
	}), nil
}

// RetryOptions are shared by every ARM client. Throttling and transient
// server errors are retried by the pipeline; long-running operation polling
// is handled separately.
var RetryOptions = policy.RetryOptions{
	MaxRetries:    3,
	RetryDelay:    2 * time.Second,
	MaxRetryDelay: 30 * time.Second,
	ShouldRetry:   shouldRetry,
}

func shouldRetry(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return false
	}
	return slices.Contains(autorest.StatusCodesForRetry, resp.StatusCode)
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when
// instantiating Azure SDK for Go clients. Requests are logged to log.
func (e *Environment) ArmClientOptions(log *logrus.Entry) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud:            e.Cloud,
			Retry:            RetryOptions,
			PerRetryPolicies: []policy.Policy{NewLoggingPolicy(log)},
		},
	}
}

func (e *Environment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

// NewDefaultAzureCredential returns the credential chain used by every
// client: environment, workload identity, managed identity, then the Azure
// CLI.
func (e *Environment) NewDefaultAzureCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(e.DefaultAzureCredentialOptions())
}
