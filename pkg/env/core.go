package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cloudbinding/provisioner/pkg/util/azureclient"
)

// Core collects the configuration and identity every command needs to talk
// to Azure Resource Manager.
type Core interface {
	Config() *Config
	SubscriptionID() string
	NewTokenCredential() (azcore.TokenCredential, error)
	ArmClientOptions() *arm.ClientOptions
	Logger() *logrus.Entry
}

type core struct {
	config      *Config
	environment azureclient.Environment
	log         *logrus.Entry
}

var _ Core = &core{}

// NewCore reads configuration from cfg and resolves the cloud environment.
func NewCore(log *logrus.Entry, cfg *viper.Viper) (Core, error) {
	config, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}

	environment, err := azureclient.EnvironmentFromName(config.AzureEnvironment)
	if err != nil {
		return nil, err
	}

	log.Infof("using %s, subscription %s", environment.Name, config.SubscriptionID)

	return &core{
		config:      config,
		environment: environment,
		log:         log,
	}, nil
}

func (c *core) Config() *Config {
	return c.config
}

func (c *core) SubscriptionID() string {
	return c.config.SubscriptionID
}

func (c *core) NewTokenCredential() (azcore.TokenCredential, error) {
	return c.environment.NewDefaultAzureCredential()
}

func (c *core) ArmClientOptions() *arm.ClientOptions {
	return c.environment.ArmClientOptions(c.log)
}

func (c *core) Logger() *logrus.Entry {
	return c.log
}
