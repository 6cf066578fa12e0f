package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/nodestate"
	"github.com/cloudbinding/provisioner/pkg/util/azureerrors"
	"github.com/cloudbinding/provisioner/pkg/util/steps"
	"github.com/cloudbinding/provisioner/pkg/util/subnet"
)

type creationState string

const (
	stateStart        creationState = "START"
	stateGroupReady   creationState = "GROUP_READY"
	stateNetworkReady creationState = "NETWORK_READY"
	stateSubnetReady  creationState = "SUBNET_READY"
	stateNICReady     creationState = "NIC_READY"
	stateVMSubmitted  creationState = "VM_SUBMITTED"
	stateVMReady      creationState = "VM_READY"
	stateFailed       creationState = "FAILED"
)

// topology is the part of a request shared by all of its nodes: the
// resource group, virtual network and subnet.
type topology struct {
	p   *provisioner
	log *logrus.Entry

	location string
	tags     map[string]*string
	options  api.NodeOptions
	image    *api.ImageReference
	ref      api.NetworkTopologyRef

	// subnetResourceGroup differs from ref.ResourceGroup only for a caller
	// supplied subnet.
	subnetResourceGroup string
	vnetPrefix          string
	subnetPrefix        string

	state     creationState
	target    creationState
	resources resourceLedger
}

// resourceLedger records the resources a request created. A resource is
// submitted once its create call is accepted and created once the create
// operation has finished.
type resourceLedger struct {
	created   []string
	submitted []string
}

func (l *resourceLedger) submit(id string) {
	l.submitted = append(l.submitted, id)
}

// complete moves id from submitted to created. Resources that were adopted
// rather than submitted are ignored.
func (l *resourceLedger) complete(id string) {
	i := slices.Index(l.submitted, id)
	if i < 0 {
		return
	}
	l.submitted = slices.Delete(l.submitted, i, i+1)
	l.created = append(l.created, id)
}

func (p *provisioner) newTopology(req *api.NodeRequest) (*topology, error) {
	if req.Group == "" {
		return nil, &api.InvalidArgumentError{Field: "group", Message: "must not be empty"}
	}
	if req.Count < 1 {
		return nil, &api.InvalidArgumentError{Field: "count", Message: fmt.Sprintf("must be at least 1, got %d", req.Count)}
	}

	t := &topology{
		p:        p,
		location: req.Location,
		options:  req.Options,
		state:    stateStart,
		target:   stateStart,
	}

	if t.location == "" {
		t.location = p.config.Location
	}
	if t.location == "" {
		return nil, &api.InvalidArgumentError{Field: "location", Message: "must be set on the request or in configuration"}
	}
	if t.options.SSHPublicKey == "" {
		return nil, &api.InvalidArgumentError{Field: "options.sshPublicKey", Message: "must not be empty"}
	}

	if t.options.VMSize == "" {
		t.options.VMSize = p.config.VMSize
	}
	if t.options.AdminUsername == "" {
		t.options.AdminUsername = p.config.AdminUsername
	}
	t.image = t.options.Image
	if t.image == nil {
		image, err := api.ParseImageReference(p.config.Image)
		if err != nil {
			return nil, err
		}
		t.image = image
	}

	t.ref.ResourceGroup = t.options.ResourceGroup
	if t.ref.ResourceGroup == "" {
		t.ref.ResourceGroup = p.config.ResourceGroup
	}
	if t.ref.ResourceGroup == "" {
		t.ref.ResourceGroup = req.Group
	}

	t.tags = map[string]*string{}
	for k, v := range t.options.Tags {
		t.tags[k] = ptr.To(v)
	}
	t.tags[nodestate.TagGroup] = ptr.To(req.Group)

	if t.options.SubnetID != "" {
		r, err := arm.ParseResourceID(t.options.SubnetID)
		if err != nil {
			return nil, &api.InvalidArgumentError{Field: "options.subnetId", Message: err.Error()}
		}
		if !strings.EqualFold(r.ResourceType.String(), "Microsoft.Network/virtualNetworks/subnets") || r.Parent == nil {
			return nil, &api.InvalidArgumentError{Field: "options.subnetId", Message: fmt.Sprintf("%q is not a subnet resource ID", t.options.SubnetID)}
		}
		t.subnetResourceGroup = r.ResourceGroupName
		t.ref.VirtualNetworkName = r.Parent.Name
		t.ref.SubnetName = r.Name
		t.ref.SubnetID = t.options.SubnetID
	} else {
		t.subnetResourceGroup = t.ref.ResourceGroup
		t.ref.VirtualNetworkName = t.options.VirtualNetworkName
		if t.ref.VirtualNetworkName == "" {
			t.ref.VirtualNetworkName = req.Group + "virtualnetwork"
		}
		t.ref.SubnetName = t.options.SubnetName
		if t.ref.SubnetName == "" {
			t.ref.SubnetName = req.Group + "subnet"
		}

		t.vnetPrefix = t.options.VirtualNetworkAddressPrefix
		if t.vnetPrefix == "" {
			t.vnetPrefix = p.config.VirtualNetworkAddressPrefix
		}
		t.subnetPrefix = t.options.SubnetAddressPrefix
		if t.subnetPrefix == "" {
			t.subnetPrefix = p.config.SubnetAddressPrefix
		}
		if t.subnetPrefix == "" {
			prefix, err := subnet.DefaultPrefix(t.vnetPrefix)
			if err != nil {
				return nil, &api.InvalidArgumentError{Field: "options.virtualNetworkAddressPrefix", Message: err.Error()}
			}
			t.subnetPrefix = prefix
		}
		if err := subnet.VerifyWithin(t.vnetPrefix, t.subnetPrefix); err != nil {
			return nil, &api.InvalidArgumentError{Field: "options.subnetAddressPrefix", Message: err.Error()}
		}
	}

	t.log = p.log.WithFields(logrus.Fields{
		"group":         req.Group,
		"resourceGroup": t.ref.ResourceGroup,
	})

	return t, nil
}

// CreateNodes provisions req.Count nodes. The resource group, virtual network
// and subnet are ensured once, then the nodes are created concurrently. Nodes
// that were created are returned even when others failed.
func (p *provisioner) CreateNodes(ctx context.Context, req *api.NodeRequest) ([]*api.Node, error) {
	t, err := p.newTopology(req)
	if err != nil {
		return nil, err
	}

	t.log.Infof("creating %d node(s) in %s", req.Count, t.location)

	err = steps.Run(ctx, t.log, p.m, []steps.Step{
		steps.Action(t.ensureResourceGroup),
		steps.Action(t.ensureVirtualNetwork),
		steps.Action(t.ensureSubnet),
	})
	if err != nil {
		return nil, t.fail(err)
	}

	creations := make([]*nodeCreation, req.Count)
	for i := range creations {
		creations[i] = t.newNodeCreation(p.nodeName(req.Group))
	}

	nodes := make([]*api.Node, req.Count)
	var mu sync.Mutex
	var errs *multierror.Error

	g := &errgroup.Group{}
	g.SetLimit(p.config.NodeConcurrency)
	for i, n := range creations {
		g.Go(func() error {
			node, err := n.run(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierror.Append(errs, err)
				return nil
			}
			nodes[i] = node
			return nil
		})
	}
	_ = g.Wait()

	nodes = slices.DeleteFunc(nodes, func(n *api.Node) bool { return n == nil })

	if p.m != nil {
		p.m.EmitGauge("provisioner.nodes", int64(len(nodes)), map[string]string{"group": req.Group, "result": "created"})
		p.m.EmitGauge("provisioner.nodes", int64(req.Count-len(nodes)), map[string]string{"group": req.Group, "result": "failed"})
	}

	if errs != nil && len(errs.Errors) == 1 {
		return nodes, errs.Errors[0]
	}
	return nodes, errs.ErrorOrNil()
}

// nodeName returns {group}-{8 hex characters}.
func (p *provisioner) nodeName(group string) string {
	suffix := strings.ReplaceAll(p.uuid.Generate(), "-", "")
	return group + "-" + suffix[:min(8, len(suffix))]
}

func (t *topology) fail(err error) error {
	t.log.Warnf("failed in state %s while moving to %s", t.state, t.target)
	t.state = stateFailed
	return partialProvisioningError(t.resources, t.target, err)
}

func partialProvisioningError(l resourceLedger, step creationState, err error) error {
	if len(l.created) == 0 && len(l.submitted) == 0 {
		return err
	}
	return &api.PartialProvisioningError{
		Created:    slices.Clone(l.created),
		Submitted:  slices.Clone(l.submitted),
		FailedStep: string(step),
		Err:        err,
	}
}

// getOrCreate reads a resource and submits its creation when it is missing.
// A conflict on create means a concurrent creator won the race, so the
// resource is read again and adopted. created reports whether this call
// submitted the creation; the returned handle is zero otherwise.
func getOrCreate(ctx context.Context, log *logrus.Entry, kind, name string, exists func(context.Context) (bool, error), create func(context.Context) (api.OperationHandle, error)) (handle api.OperationHandle, created bool, err error) {
	ok, err := exists(ctx)
	if err != nil || ok {
		return api.OperationHandle{}, false, err
	}

	log.Infof("creating %s %s", kind, name)
	handle, err = create(ctx)
	if azureerrors.IsConflictError(err) {
		log.Warnf("%s %s is being created concurrently, adopting it: %v", kind, name, err)
		ok, getErr := exists(ctx)
		if getErr != nil {
			return api.OperationHandle{}, false, getErr
		}
		if !ok {
			return api.OperationHandle{}, false, err
		}
		return api.OperationHandle{}, false, nil
	}
	if azureerrors.ResourceGroupNotFound(err) {
		return api.OperationHandle{}, false, fmt.Errorf("creating %s %s: resource group was deleted concurrently: %w", kind, name, err)
	}
	if err != nil {
		return api.OperationHandle{}, false, err
	}

	return handle, true, nil
}

func (t *topology) ensureResourceGroup(ctx context.Context) error {
	t.target = stateGroupReady
	rg := t.ref.ResourceGroup

	_, created, err := getOrCreate(ctx, t.log, "resourceGroup", rg,
		func(ctx context.Context) (bool, error) {
			group, err := t.p.resourceGroups.GetIfExists(ctx, rg)
			return group != nil, err
		},
		func(ctx context.Context) (api.OperationHandle, error) {
			_, err := t.p.resourceGroups.Create(ctx, rg, resourceGroupParameters(t.location, t.tags))
			return api.OperationHandle{}, err
		},
	)
	if err != nil {
		return err
	}
	if created {
		id := resourceGroupID(t.p.subscriptionID, rg)
		t.resources.submit(id)
		t.resources.complete(id)
	}

	t.state = stateGroupReady
	return nil
}

func (t *topology) ensureVirtualNetwork(ctx context.Context) error {
	t.target = stateNetworkReady

	// a caller supplied subnet brings its own virtual network
	if t.ref.SubnetID != "" {
		t.state = stateNetworkReady
		return nil
	}

	rg, vnet := t.ref.ResourceGroup, t.ref.VirtualNetworkName
	handle, created, err := getOrCreate(ctx, t.log, "virtualNetwork", vnet,
		func(ctx context.Context) (bool, error) {
			v, err := t.p.virtualNetworks.GetIfExists(ctx, rg, vnet)
			return v != nil, err
		},
		func(ctx context.Context) (api.OperationHandle, error) {
			return t.p.virtualNetworks.CreateOrUpdateAsync(ctx, rg, vnet, virtualNetworkParameters(t.location, t.vnetPrefix, t.tags))
		},
	)
	if err != nil {
		return err
	}
	id := virtualNetworkID(t.p.subscriptionID, rg, vnet)
	if created {
		t.resources.submit(id)
	}

	err = t.p.waiter.Wait(ctx, "virtualNetwork "+vnet, handle)
	if err != nil {
		return err
	}
	t.resources.complete(id)

	t.state = stateNetworkReady
	return nil
}

func (t *topology) ensureSubnet(ctx context.Context) error {
	t.target = stateSubnetReady
	rg, vnet, name := t.subnetResourceGroup, t.ref.VirtualNetworkName, t.ref.SubnetName

	if t.ref.SubnetID != "" {
		s, err := t.p.subnets.GetIfExists(ctx, rg, vnet, name)
		if err != nil {
			return err
		}
		if s == nil {
			return api.NewCloudError(http.StatusNotFound, api.CloudErrorCodeNotFound, "options.subnetId", "The subnet '%s' could not be found.", t.ref.SubnetID)
		}
		t.state = stateSubnetReady
		return nil
	}

	handle, created, err := getOrCreate(ctx, t.log, "subnet", name,
		func(ctx context.Context) (bool, error) {
			s, err := t.p.subnets.GetIfExists(ctx, rg, vnet, name)
			return s != nil, err
		},
		func(ctx context.Context) (api.OperationHandle, error) {
			return t.p.subnets.CreateOrUpdateAsync(ctx, rg, vnet, name, subnetParameters(t.subnetPrefix))
		},
	)
	if err != nil {
		return err
	}
	t.ref.SubnetID = subnetID(t.p.subscriptionID, rg, vnet, name)
	if created {
		t.resources.submit(t.ref.SubnetID)
	}

	err = t.p.waiter.Wait(ctx, "subnet "+name, handle)
	if err != nil {
		return err
	}
	t.resources.complete(t.ref.SubnetID)

	t.state = stateSubnetReady
	return nil
}

// nodeCreation carries one node from SUBNET_READY to VM_READY.
type nodeCreation struct {
	t    *topology
	log  *logrus.Entry
	name string

	interfaceID string
	handle      api.OperationHandle
	node        *api.Node

	state     creationState
	target    creationState
	resources resourceLedger
}

func (t *topology) newNodeCreation(name string) *nodeCreation {
	return &nodeCreation{
		t:     t,
		log:   t.log.WithField("node", name),
		name:  name,
		state: t.state,
	}
}

func (n *nodeCreation) run(ctx context.Context) (*api.Node, error) {
	err := steps.Run(ctx, n.log, n.t.p.m, []steps.Step{
		steps.Action(n.ensureNetworkInterface),
		steps.Action(n.submitVirtualMachine),
		steps.Action(n.waitForVirtualMachine),
	})
	if err != nil {
		n.log.Warnf("failed in state %s while moving to %s", n.state, n.target)
		n.state = stateFailed
		return nil, partialProvisioningError(resourceLedger{
			created:   append(slices.Clone(n.t.resources.created), n.resources.created...),
			submitted: n.resources.submitted,
		}, n.target, err)
	}

	return n.node, nil
}

func (n *nodeCreation) ensureNetworkInterface(ctx context.Context) error {
	n.target = stateNICReady
	p, rg, nic := n.t.p, n.t.ref.ResourceGroup, interfaceName(n.name)

	handle, created, err := getOrCreate(ctx, n.log, "networkInterface", nic,
		func(ctx context.Context) (bool, error) {
			i, err := p.interfaces.GetIfExists(ctx, rg, nic)
			return i != nil, err
		},
		func(ctx context.Context) (api.OperationHandle, error) {
			return p.interfaces.CreateOrUpdateAsync(ctx, rg, nic, interfaceParameters(n.t.location, n.t.ref.SubnetID, n.t.tags))
		},
	)
	if err != nil {
		return err
	}
	n.interfaceID = interfaceID(p.subscriptionID, rg, nic)
	if created {
		n.resources.submit(n.interfaceID)
	}

	err = p.waiter.Wait(ctx, "networkInterface "+nic, handle)
	if err != nil {
		return err
	}
	n.resources.complete(n.interfaceID)

	n.state = stateNICReady
	return nil
}

func (n *nodeCreation) submitVirtualMachine(ctx context.Context) error {
	n.target = stateVMSubmitted
	p, rg := n.t.p, n.t.ref.ResourceGroup

	tags := maps.Clone(n.t.tags)

	handle, created, err := getOrCreate(ctx, n.log, "virtualMachine", n.name,
		func(ctx context.Context) (bool, error) {
			vm, err := p.virtualMachines.GetIfExists(ctx, rg, n.name)
			return vm != nil, err
		},
		func(ctx context.Context) (api.OperationHandle, error) {
			return p.virtualMachines.CreateOrUpdateAsync(ctx, rg, n.name, virtualMachineParameters(&virtualMachineSpec{
				name:          n.name,
				location:      n.t.location,
				vmSize:        n.t.options.VMSize,
				image:         n.t.image,
				adminUsername: n.t.options.AdminUsername,
				sshPublicKey:  n.t.options.SSHPublicKey,
				interfaceID:   n.interfaceID,
				tags:          tags,
			}))
		},
	)
	if err != nil {
		return err
	}
	if created {
		n.resources.submit(virtualMachineID(p.subscriptionID, rg, n.name))
	}

	n.handle = handle
	n.state = stateVMSubmitted
	return nil
}

func (n *nodeCreation) waitForVirtualMachine(ctx context.Context) error {
	n.target = stateVMReady
	p, rg := n.t.p, n.t.ref.ResourceGroup

	err := p.waiter.Wait(ctx, "virtualMachine "+n.name, n.handle)
	if err != nil {
		return err
	}
	n.resources.complete(virtualMachineID(p.subscriptionID, rg, n.name))

	vm, err := p.virtualMachines.GetIfExists(ctx, rg, n.name)
	if err != nil {
		return err
	}
	if vm == nil {
		return fmt.Errorf("virtual machine %s disappeared after creation", n.name)
	}

	n.node, err = p.describe(ctx, vm)
	if err != nil {
		return err
	}

	n.state = stateVMReady
	n.log.Infof("node %s is %s", n.node.ID, n.node.Status)
	return nil
}
