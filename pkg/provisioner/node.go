package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	sdkcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/nodestate"
)

func (p *provisioner) GetNode(ctx context.Context, id string) (*api.Node, error) {
	rg, name, err := api.SplitNodeID(id)
	if err != nil {
		return nil, err
	}

	vm, err := p.virtualMachines.GetIfExists(ctx, rg, name)
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, nodeNotFound(id)
	}

	return p.describe(ctx, vm)
}

// DestroyNode deletes the virtual machine, which takes its OS disk with it,
// and then its network interfaces. The shared network is left alone.
func (p *provisioner) DestroyNode(ctx context.Context, id string) error {
	rg, name, err := api.SplitNodeID(id)
	if err != nil {
		return err
	}

	log := p.log.WithField("node", id)

	vm, err := p.virtualMachines.GetIfExists(ctx, rg, name)
	if err != nil {
		return err
	}

	interfaces := []*arm.ResourceID{}
	if vm != nil {
		interfaces = interfaceIDs(vm)

		log.Infof("deleting virtual machine %s", name)
		handle, err := p.virtualMachines.DeleteAsync(ctx, rg, name)
		if err != nil {
			return err
		}
		err = p.waiter.Wait(ctx, "delete virtualMachine "+name, handle)
		if err != nil {
			return err
		}
	} else {
		log.Infof("virtual machine %s not found", name)
		r, err := arm.ParseResourceID(interfaceID(p.subscriptionID, rg, interfaceName(name)))
		if err != nil {
			return err
		}
		interfaces = append(interfaces, r)
	}

	for _, r := range interfaces {
		log.Infof("deleting network interface %s", r.Name)
		handle, err := p.interfaces.DeleteAsync(ctx, r.ResourceGroupName, r.Name)
		if err != nil {
			return err
		}
		err = p.waiter.Wait(ctx, "delete networkInterface "+r.Name, handle)
		if err != nil {
			return err
		}
	}

	return nil
}

// describe maps vm to a Node and fills in its network from the primary
// network interface.
func (p *provisioner) describe(ctx context.Context, vm *sdkcompute.VirtualMachine) (*api.Node, error) {
	node := nodestate.FromVirtualMachine(vm)

	interfaces := interfaceIDs(vm)
	if len(interfaces) == 0 {
		return node, nil
	}

	nic, err := p.interfaces.GetIfExists(ctx, interfaces[0].ResourceGroupName, interfaces[0].Name)
	if err != nil {
		return nil, err
	}
	if nic == nil || nic.Properties == nil {
		return node, nil
	}

	for _, ipc := range nic.Properties.IPConfigurations {
		if ipc == nil || ipc.Properties == nil {
			continue
		}
		if ipc.Properties.PrivateIPAddress != nil {
			node.PrivateIPs = append(node.PrivateIPs, *ipc.Properties.PrivateIPAddress)
		}
		if node.Network.SubnetID != "" || ipc.Properties.Subnet == nil {
			continue
		}
		id := ptr.Deref(ipc.Properties.Subnet.ID, "")
		r, err := arm.ParseResourceID(id)
		if err != nil || r.Parent == nil {
			continue
		}
		node.Network.SubnetID = id
		node.Network.SubnetName = r.Name
		node.Network.VirtualNetworkName = r.Parent.Name
	}

	return node, nil
}

// interfaceIDs returns the parsed IDs of the network interfaces attached to
// vm, primary first.
func interfaceIDs(vm *sdkcompute.VirtualMachine) []*arm.ResourceID {
	if vm.Properties == nil || vm.Properties.NetworkProfile == nil {
		return nil
	}

	var primary, rest []*arm.ResourceID
	for _, ref := range vm.Properties.NetworkProfile.NetworkInterfaces {
		if ref == nil || ref.ID == nil {
			continue
		}
		r, err := arm.ParseResourceID(*ref.ID)
		if err != nil {
			continue
		}
		if ref.Properties != nil && ptr.Deref(ref.Properties.Primary, false) {
			primary = append(primary, r)
		} else {
			rest = append(rest, r)
		}
	}

	return append(primary, rest...)
}

func nodeNotFound(id string) error {
	return api.NewCloudError(http.StatusNotFound, api.CloudErrorCodeNotFound, "id", "The node '%s' could not be found.", id)
}
