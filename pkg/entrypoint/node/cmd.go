package node

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/entrypoint/config"
	"github.com/cloudbinding/provisioner/pkg/provisioner"
	utillog "github.com/cloudbinding/provisioner/pkg/util/log"
)

const (
	flagGroup         = "group"
	flagCount         = "count"
	flagLocation      = "location"
	flagResourceGroup = "resource-group"
	flagVNet          = "vnet"
	flagVNetPrefix    = "vnet-prefix"
	flagSubnet        = "subnet"
	flagSubnetPrefix  = "subnet-prefix"
	flagSubnetID      = "subnet-id"
	flagVMSize        = "vm-size"
	flagImage         = "image"
	flagAdminUsername = "admin-username"
	flagSSHKeyFile    = "ssh-public-key-file"
	flagTag           = "tag"
)

type Config struct {
	config.Common
}

// NewCommand returns the cobra command for "node".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "node",
		Short: "Create, inspect and destroy nodes",
	}

	cc.AddCommand(newCreateCommand(), newGetCommand(), newDestroyCommand())

	return cc
}

func newCreateCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:  "create",
		Long: "Create nodes, together with their resource group, virtual network and subnet when missing",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, log *logrus.Entry, p provisioner.Provisioner) error {
				return createNodes(ctx, log, cmd.OutOrStdout(), p, req)
			})
		},
	}

	f := cc.Flags()
	f.String(flagGroup, "", "node group name")
	f.Int(flagCount, 1, "number of nodes")
	f.String(flagLocation, "", "Azure region, defaults to LOCATION")
	f.String(flagResourceGroup, "", "resource group, defaults to RESOURCEGROUP or the group name")
	f.String(flagVNet, "", "virtual network name, defaults to {group}virtualnetwork")
	f.String(flagVNetPrefix, "", "virtual network address prefix")
	f.String(flagSubnet, "", "subnet name, defaults to {group}subnet")
	f.String(flagSubnetPrefix, "", "subnet address prefix")
	f.String(flagSubnetID, "", "resource ID of an existing subnet")
	f.String(flagVMSize, "", "virtual machine size")
	f.String(flagImage, "", "image as publisher:offer:sku:version or resource ID")
	f.String(flagAdminUsername, "", "admin user name")
	f.String(flagSSHKeyFile, "", "file holding the admin user's SSH public key")
	f.StringToString(flagTag, nil, "extra resource tags, key=value")

	_ = cc.MarkFlagRequired(flagGroup)
	_ = cc.MarkFlagRequired(flagSSHKeyFile)
	cc.MarkFlagsMutuallyExclusive(flagSubnetID, flagVNet)
	cc.MarkFlagsMutuallyExclusive(flagSubnetID, flagSubnet)

	return cc
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "get resourceGroup/name",
		Long: "Show a node and its status",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, log *logrus.Entry, p provisioner.Provisioner) error {
				return getNode(ctx, cmd.OutOrStdout(), p, args[0])
			})
		},
	}
}

func newDestroyCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "destroy resourceGroup/name",
		Long: "Delete a node's virtual machine and network interface",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, log *logrus.Entry, p provisioner.Provisioner) error {
				return destroyNode(ctx, log, p, args[0])
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

// run builds a Provisioner from the environment and hands it to f. Metrics
// are flushed once f returns.
func run(cmd *cobra.Command, f func(context.Context, *logrus.Entry, provisioner.Provisioner) error) error {
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

	m := config.NewMetrics(log, _env, "node")
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			log.Warnf("flushing metrics: %v", closeErr)
		}
	}()

	p, err := provisioner.New(log, _env, m)
	if err != nil {
		return err
	}

	return f(ctx, log, p)
}

func requestFromFlags(cmd *cobra.Command) (*api.NodeRequest, error) {
	f := cmd.Flags()
	req := &api.NodeRequest{}
	var err error

	for _, s := range []struct {
		flag string
		dst  *string
	}{
		{flagGroup, &req.Group},
		{flagLocation, &req.Location},
		{flagResourceGroup, &req.Options.ResourceGroup},
		{flagVNet, &req.Options.VirtualNetworkName},
		{flagVNetPrefix, &req.Options.VirtualNetworkAddressPrefix},
		{flagSubnet, &req.Options.SubnetName},
		{flagSubnetPrefix, &req.Options.SubnetAddressPrefix},
		{flagSubnetID, &req.Options.SubnetID},
		{flagVMSize, &req.Options.VMSize},
		{flagAdminUsername, &req.Options.AdminUsername},
	} {
		*s.dst, err = f.GetString(s.flag)
		if err != nil {
			return nil, err
		}
	}

	req.Count, err = f.GetInt(flagCount)
	if err != nil {
		return nil, err
	}

	image, err := f.GetString(flagImage)
	if err != nil {
		return nil, err
	}
	if image != "" {
		req.Options.Image, err = api.ParseImageReference(image)
		if err != nil {
			return nil, err
		}
	}

	keyFile, err := f.GetString(flagSSHKeyFile)
	if err != nil {
		return nil, err
	}
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, err
	}
	req.Options.SSHPublicKey = strings.TrimSpace(string(key))

	req.Options.Tags, err = f.GetStringToString(flagTag)
	if err != nil {
		return nil, err
	}
	if len(req.Options.Tags) == 0 {
		req.Options.Tags = nil
	}

	return req, nil
}

// createNodes prints the nodes that were created even when some failed.
func createNodes(ctx context.Context, log *logrus.Entry, out io.Writer, p provisioner.Provisioner, req *api.NodeRequest) error {
	nodes, err := p.CreateNodes(ctx, req)
	if len(nodes) > 0 {
		if printErr := config.Print(out, nodes); printErr != nil {
			return printErr
		}
	}
	if err != nil {
		return err
	}

	log.Infof("created %d node(s)", len(nodes))
	return nil
}

func getNode(ctx context.Context, out io.Writer, p provisioner.Provisioner, id string) error {
	node, err := p.GetNode(ctx, id)
	if err != nil {
		return err
	}

	return config.Print(out, node)
}

func destroyNode(ctx context.Context, log *logrus.Entry, p provisioner.Provisioner, id string) error {
	err := p.DestroyNode(ctx, id)
	if err != nil {
		return fmt.Errorf("destroying %s: %w", id, err)
	}

	log.Infof("destroyed %s", id)
	return nil
}
