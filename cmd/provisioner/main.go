package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cloudbinding/provisioner/pkg/entrypoint/config"
	"github.com/cloudbinding/provisioner/pkg/entrypoint/image"
	"github.com/cloudbinding/provisioner/pkg/entrypoint/node"
	utillog "github.com/cloudbinding/provisioner/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func newRootCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:           "provisioner",
		Short:         "Provision Azure virtual machines and capture them as images",
		Version:       gitCommit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddCommonFlags(cc)
	cc.AddCommand(node.NewCommand(), image.NewCommand())

	return cc
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		utillog.GetLogger("").Fatal(err)
	}
}
