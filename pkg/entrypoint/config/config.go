package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudbinding/provisioner/pkg/env"
	"github.com/cloudbinding/provisioner/pkg/metrics"
	"github.com/cloudbinding/provisioner/pkg/metrics/noop"
	"github.com/cloudbinding/provisioner/pkg/metrics/prometheus"
)

const FlagLogLevel = "loglevel"

// Common holds the settings shared by every command.
type Common struct {
	LogLevel string
}

// AddCommonFlags registers the shared flags on the root command.
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagLogLevel, logrus.InfoLevel.String(), "log level: panic, fatal, error, warning, info, debug or trace")
}

func CommonConfigFromCmd(cmd *cobra.Command) (Common, error) {
	logLevel, err := cmd.Flags().GetString(FlagLogLevel)
	if err != nil {
		return Common{}, err
	}

	return Common{
		LogLevel: logLevel,
	}, nil
}

// NewCore reads the process configuration from the environment.
func NewCore(log *logrus.Entry) (env.Core, error) {
	cfg := viper.New()
	cfg.AutomaticEnv()

	return env.NewCore(log, cfg)
}

// NewMetrics returns a Prometheus registry pushing to the configured
// Pushgateway, or a no-op emitter when none is configured.
func NewMetrics(log *logrus.Entry, _env env.Core, job string) metrics.Interface {
	if _env.Config().PushgatewayURL == "" {
		return &noop.Noop{}
	}
	return prometheus.New(log, _env.Config().PushgatewayURL, job)
}

// Print writes v to out as indented JSON.
func Print(out io.Writer, v interface{}) error {
	e := json.NewEncoder(out)
	e.SetIndent("", "    ")
	return e.Encode(v)
}
