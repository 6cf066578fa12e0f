package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/cloudbinding/provisioner/pkg/util/retry"
)

const (
	KeyAzureEnvironment            = "AZURE_ENVIRONMENT"
	KeyAzureSubscriptionID         = "AZURE_SUBSCRIPTION_ID"
	KeyLocation                    = "LOCATION"
	KeyResourceGroup               = "RESOURCEGROUP"
	KeyOperationTimeout            = "OPERATION_TIMEOUT"
	KeyOperationPollInitialPeriod  = "OPERATION_POLL_INITIAL_PERIOD"
	KeyOperationPollMaxPeriod      = "OPERATION_POLL_MAX_PERIOD"
	KeyDefaultVNetAddressPrefix    = "DEFAULT_VNET_ADDRESS_PREFIX"
	KeyDefaultSubnetAddressPrefix  = "DEFAULT_SUBNET_ADDRESS_PREFIX"
	KeyDefaultVMSize               = "DEFAULT_VM_SIZE"
	KeyDefaultImage                = "DEFAULT_IMAGE"
	KeyDefaultAdminUsername        = "DEFAULT_ADMIN_USERNAME"
	KeyImageNamespace              = "IMAGE_NAMESPACE"
	KeyNodeConcurrency             = "NODE_CONCURRENCY"
	KeyPushgatewayURL              = "PUSHGATEWAY_URL"
	defaultOperationTimeoutMillis  = 1200000
	defaultPollInitialPeriodSecond = 5
	defaultPollMaxPeriodSeconds    = 15
)

// Config is the resolved process configuration.
type Config struct {
	AzureEnvironment string
	SubscriptionID   string
	Location         string
	// ResourceGroup, when set, is used for every request that does not name
	// its own. Otherwise the node group name is used.
	ResourceGroup string

	OperationTimeout           time.Duration
	OperationPollInitialPeriod time.Duration
	OperationPollMaxPeriod     time.Duration

	VirtualNetworkAddressPrefix string
	// SubnetAddressPrefix is empty when it should be derived from the
	// virtual network prefix.
	SubnetAddressPrefix string

	VMSize        string
	Image         string
	AdminUsername string

	ImageNamespace  string
	NodeConcurrency int
	PushgatewayURL  string
}

// SetDefaults registers the default value of every key on cfg.
func SetDefaults(cfg *viper.Viper) {
	cfg.SetDefault(KeyAzureEnvironment, "AzurePublicCloud")
	cfg.SetDefault(KeyOperationTimeout, defaultOperationTimeoutMillis)
	cfg.SetDefault(KeyOperationPollInitialPeriod, defaultPollInitialPeriodSecond)
	cfg.SetDefault(KeyOperationPollMaxPeriod, defaultPollMaxPeriodSeconds)
	cfg.SetDefault(KeyDefaultVNetAddressPrefix, "10.0.0.0/16")
	cfg.SetDefault(KeyDefaultVMSize, "Standard_D2s_v3")
	cfg.SetDefault(KeyDefaultImage, "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest")
	cfg.SetDefault(KeyDefaultAdminUsername, "azureuser")
	cfg.SetDefault(KeyImageNamespace, "custom")
	cfg.SetDefault(KeyNodeConcurrency, 4)
}

// NewConfig reads and validates the configuration held by cfg.
func NewConfig(cfg *viper.Viper) (*Config, error) {
	SetDefaults(cfg)

	if err := ValidateVars(cfg, KeyAzureSubscriptionID); err != nil {
		return nil, err
	}

	timeoutMillis, err := positiveInt(cfg, KeyOperationTimeout)
	if err != nil {
		return nil, err
	}
	initialSeconds, err := positiveInt(cfg, KeyOperationPollInitialPeriod)
	if err != nil {
		return nil, err
	}
	maxSeconds, err := positiveInt(cfg, KeyOperationPollMaxPeriod)
	if err != nil {
		return nil, err
	}
	if maxSeconds < initialSeconds {
		return nil, fmt.Errorf("%s (%d) must not be less than %s (%d)", KeyOperationPollMaxPeriod, maxSeconds, KeyOperationPollInitialPeriod, initialSeconds)
	}
	concurrency, err := positiveInt(cfg, KeyNodeConcurrency)
	if err != nil {
		return nil, err
	}

	c := &Config{
		AzureEnvironment: cfg.GetString(KeyAzureEnvironment),
		SubscriptionID:   cfg.GetString(KeyAzureSubscriptionID),
		Location:         cfg.GetString(KeyLocation),
		ResourceGroup:    cfg.GetString(KeyResourceGroup),

		OperationTimeout:           time.Duration(timeoutMillis) * time.Millisecond,
		OperationPollInitialPeriod: time.Duration(initialSeconds) * time.Second,
		OperationPollMaxPeriod:     time.Duration(maxSeconds) * time.Second,

		VirtualNetworkAddressPrefix: cfg.GetString(KeyDefaultVNetAddressPrefix),
		SubnetAddressPrefix:         cfg.GetString(KeyDefaultSubnetAddressPrefix),

		VMSize:        cfg.GetString(KeyDefaultVMSize),
		Image:         cfg.GetString(KeyDefaultImage),
		AdminUsername: cfg.GetString(KeyDefaultAdminUsername),

		ImageNamespace:  cfg.GetString(KeyImageNamespace),
		NodeConcurrency: concurrency,
		PushgatewayURL:  cfg.GetString(KeyPushgatewayURL),
	}

	for key, prefix := range map[string]string{
		KeyDefaultVNetAddressPrefix:   c.VirtualNetworkAddressPrefix,
		KeyDefaultSubnetAddressPrefix: c.SubnetAddressPrefix,
	} {
		if prefix == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(prefix); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	return c, nil
}

func positiveInt(cfg *viper.Viper, key string) (int, error) {
	i, err := cast.ToIntE(cfg.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, cfg.GetString(key))
	}
	if i <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, i)
	}
	return i, nil
}

// OperationBackoff is the polling bound applied to every long-running
// provisioning operation.
func (c *Config) OperationBackoff() retry.Backoff {
	return retry.Backoff{
		Timeout:       c.OperationTimeout,
		InitialPeriod: c.OperationPollInitialPeriod,
		MaxPeriod:     c.OperationPollMaxPeriod,
	}
}

// ValidateVars iterates over all the variables and checks whether each is
// set in cfg. It returns an error naming the first one missing.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	for _, v := range vars {
		if !cfg.IsSet(v) || cfg.GetString(v) == "" {
			return fmt.Errorf("environment variable %q unset", v)
		}
	}
	return nil
}
