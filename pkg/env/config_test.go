package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/spf13/viper"

	"github.com/cloudbinding/provisioner/pkg/util/retry"
	utilerror "github.com/cloudbinding/provisioner/test/util/error"
)

func TestNewConfig(t *testing.T) {
	for _, tt := range []struct {
		name    string
		vars    map[string]any
		want    *Config
		wantErr string
	}{
		{
			name: "defaults",
			vars: map[string]any{
				KeyAzureSubscriptionID: "00000000-0000-0000-0000-000000000000",
				KeyLocation:            "eastus",
			},
			want: &Config{
				AzureEnvironment:            "AzurePublicCloud",
				SubscriptionID:              "00000000-0000-0000-0000-000000000000",
				Location:                    "eastus",
				OperationTimeout:            20 * time.Minute,
				OperationPollInitialPeriod:  5 * time.Second,
				OperationPollMaxPeriod:      15 * time.Second,
				VirtualNetworkAddressPrefix: "10.0.0.0/16",
				VMSize:                      "Standard_D2s_v3",
				Image:                       "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
				AdminUsername:               "azureuser",
				ImageNamespace:              "custom",
				NodeConcurrency:             4,
			},
		},
		{
			name: "overrides given as strings",
			vars: map[string]any{
				KeyAzureSubscriptionID:        "sub",
				KeyResourceGroup:              "shared",
				KeyOperationTimeout:           "60000",
				KeyOperationPollInitialPeriod: "1",
				KeyOperationPollMaxPeriod:     "2",
				KeyDefaultSubnetAddressPrefix: "10.0.4.0/24",
				KeyNodeConcurrency:            "8",
				KeyPushgatewayURL:             "http://localhost:9091",
			},
			want: &Config{
				AzureEnvironment:            "AzurePublicCloud",
				SubscriptionID:              "sub",
				ResourceGroup:               "shared",
				OperationTimeout:            time.Minute,
				OperationPollInitialPeriod:  time.Second,
				OperationPollMaxPeriod:      2 * time.Second,
				VirtualNetworkAddressPrefix: "10.0.0.0/16",
				SubnetAddressPrefix:         "10.0.4.0/24",
				VMSize:                      "Standard_D2s_v3",
				Image:                       "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
				AdminUsername:               "azureuser",
				ImageNamespace:              "custom",
				NodeConcurrency:             8,
				PushgatewayURL:              "http://localhost:9091",
			},
		},
		{
			name:    "missing subscription",
			vars:    map[string]any{},
			wantErr: `environment variable "AZURE_SUBSCRIPTION_ID" unset`,
		},
		{
			name: "non-numeric timeout",
			vars: map[string]any{
				KeyAzureSubscriptionID: "sub",
				KeyOperationTimeout:    "soon",
			},
			wantErr: `OPERATION_TIMEOUT: invalid integer "soon"`,
		},
		{
			name: "zero concurrency",
			vars: map[string]any{
				KeyAzureSubscriptionID: "sub",
				KeyNodeConcurrency:     0,
			},
			wantErr: "NODE_CONCURRENCY must be positive, got 0",
		},
		{
			name: "max period below initial period",
			vars: map[string]any{
				KeyAzureSubscriptionID:        "sub",
				KeyOperationPollInitialPeriod: 10,
				KeyOperationPollMaxPeriod:     5,
			},
			wantErr: "OPERATION_POLL_MAX_PERIOD (5) must not be less than OPERATION_POLL_INITIAL_PERIOD (10)",
		},
		{
			name: "bad vnet prefix",
			vars: map[string]any{
				KeyAzureSubscriptionID:      "sub",
				KeyDefaultVNetAddressPrefix: "10.0.0.0",
			},
			wantErr: "DEFAULT_VNET_ADDRESS_PREFIX: invalid CIDR address: 10.0.0.0",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			for k, v := range tt.vars {
				cfg.Set(k, v)
			}

			got, err := NewConfig(cfg)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestOperationBackoff(t *testing.T) {
	c := &Config{
		OperationTimeout:           time.Minute,
		OperationPollInitialPeriod: time.Second,
		OperationPollMaxPeriod:     5 * time.Second,
	}

	want := retry.Backoff{
		Timeout:       time.Minute,
		InitialPeriod: time.Second,
		MaxPeriod:     5 * time.Second,
	}

	for _, diff := range deep.Equal(c.OperationBackoff(), want) {
		t.Error(diff)
	}
}
