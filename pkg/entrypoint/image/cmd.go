package image

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/entrypoint/config"
	"github.com/cloudbinding/provisioner/pkg/imagecapture"
	utillog "github.com/cloudbinding/provisioner/pkg/util/log"
)

type Config struct {
	config.Common
}

// NewCommand returns the cobra command for "image".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "image",
		Short: "Capture virtual machines as images",
	}

	cc.AddCommand(newCaptureCommand(), newDeleteCommand())

	return cc
}

func newCaptureCommand() *cobra.Command {
	req := &api.ImageCaptureRequest{}

	cc := &cobra.Command{
		Use:  "capture",
		Long: "Generalize a virtual machine and capture its disks into the derived storage account. The virtual machine cannot be started again.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, log *logrus.Entry, w imagecapture.Workflow) error {
				return capture(ctx, log, cmd.OutOrStdout(), w, req)
			})
		},
	}

	f := cc.Flags()
	f.StringVar(&req.ResourceGroup, "resource-group", "", "resource group of the virtual machine")
	f.StringVar(&req.VMName, "vm", "", "virtual machine name")
	f.StringVar(&req.ImageName, "image-name", "", "name of the captured image")
	f.StringVar(&req.Container, "container", imagecapture.DefaultContainer, "storage container receiving the VHDs")

	_ = cc.MarkFlagRequired("resource-group")
	_ = cc.MarkFlagRequired("vm")
	_ = cc.MarkFlagRequired("image-name")

	return cc
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "delete id",
		Long: "Delete a captured image",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, log *logrus.Entry, w imagecapture.Workflow) error {
				return w.DeleteImage(ctx, args[0])
			})
		},
	}
}

func getConfig(cmd *cobra.Command) (*Config, error) {
	var c Config
	var err error
	c.Common, err = config.CommonConfigFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func run(cmd *cobra.Command, f func(context.Context, *logrus.Entry, imagecapture.Workflow) error) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := utillog.GetLogger(cfg.LogLevel)
	utillog.BridgeAzureSDK(log)

	_env, err := config.NewCore(log)
	if err != nil {
		return err
	}

	m := config.NewMetrics(log, _env, "image")
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			log.Warnf("flushing metrics: %v", closeErr)
		}
	}()

	w, err := imagecapture.New(log, _env, m)
	if err != nil {
		return err
	}

	return f(ctx, log, w)
}

func capture(ctx context.Context, log *logrus.Entry, out io.Writer, w imagecapture.Workflow, req *api.ImageCaptureRequest) error {
	result, err := w.Capture(ctx, req)
	if err != nil {
		return err
	}

	log.Infof("captured %s from %s", result.ID(), result.SourceVMID)
	return config.Print(out, result)
}
