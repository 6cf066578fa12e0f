package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sdkcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	sdkresources "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/go-test/deep"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/env"
	"github.com/cloudbinding/provisioner/pkg/operation"
	mock_armcompute "github.com/cloudbinding/provisioner/pkg/util/mocks/azureclient/azuresdk/armcompute"
	mock_armnetwork "github.com/cloudbinding/provisioner/pkg/util/mocks/azureclient/azuresdk/armnetwork"
	mock_armresources "github.com/cloudbinding/provisioner/pkg/util/mocks/azureclient/azuresdk/armresources"
	mock_metrics "github.com/cloudbinding/provisioner/pkg/util/mocks/metrics"
	mock_operation "github.com/cloudbinding/provisioner/pkg/util/mocks/operation"
	"github.com/cloudbinding/provisioner/pkg/util/retry"
	"github.com/cloudbinding/provisioner/pkg/util/uuid/fake"
	testclock "github.com/cloudbinding/provisioner/test/util/clock"
	utilerror "github.com/cloudbinding/provisioner/test/util/error"
	testlog "github.com/cloudbinding/provisioner/test/util/log"
)

const (
	subscriptionID = "00000000-0000-0000-0000-000000000000"
	location       = "eastus"
	sshKey         = "ssh-rsa AAAA"
)

var groupTags = map[string]*string{"group": ptr.To("g1")}

type mocks struct {
	resourceGroups  *mock_armresources.MockResourceGroupsClient
	virtualNetworks *mock_armnetwork.MockVirtualNetworksClient
	subnets         *mock_armnetwork.MockSubnetsClient
	interfaces      *mock_armnetwork.MockInterfacesClient
	virtualMachines *mock_armcompute.MockVirtualMachinesClient
	checker         *mock_operation.MockChecker
}

func newTestProvisioner(ctrl *gomock.Controller, log *logrus.Entry, uuids ...string) (*provisioner, *mocks) {
	m := &mocks{
		resourceGroups:  mock_armresources.NewMockResourceGroupsClient(ctrl),
		virtualNetworks: mock_armnetwork.NewMockVirtualNetworksClient(ctrl),
		subnets:         mock_armnetwork.NewMockSubnetsClient(ctrl),
		interfaces:      mock_armnetwork.NewMockInterfacesClient(ctrl),
		virtualMachines: mock_armcompute.NewMockVirtualMachinesClient(ctrl),
		checker:         mock_operation.NewMockChecker(ctrl),
	}

	return &provisioner{
		log: log,
		config: &env.Config{
			Location:                    location,
			VirtualNetworkAddressPrefix: "10.0.0.0/16",
			VMSize:                      "Standard_D2s_v3",
			Image:                       "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest",
			AdminUsername:               "azureuser",
			NodeConcurrency:             2,
		},
		subscriptionID: subscriptionID,
		uuid:           fake.NewGenerator(uuids),

		resourceGroups:  m.resourceGroups,
		virtualNetworks: m.virtualNetworks,
		subnets:         m.subnets,
		interfaces:      m.interfaces,
		virtualMachines: m.virtualMachines,

		waiter: &operation.Waiter{
			Log:     log,
			Checker: m.checker,
			Backoff: retry.Backoff{
				Timeout:       time.Minute,
				InitialPeriod: time.Second,
				MaxPeriod:     5 * time.Second,
				Clock:         testclock.NewSteppingClock(),
			},
		},
	}, m
}

func handle(name string) api.OperationHandle {
	return api.OperationHandle{
		URI:  "https://management.azure.com/subscriptions/" + subscriptionID + "/providers/Microsoft.Network/locations/eastus/operations/" + name,
		Kind: api.HandleKindAsyncOperation,
	}
}

func testVM(rg, name string) *sdkcompute.VirtualMachine {
	return &sdkcompute.VirtualMachine{
		ID:       ptr.To(virtualMachineID(subscriptionID, rg, name)),
		Name:     ptr.To(name),
		Location: ptr.To(location),
		Tags:     map[string]*string{"group": ptr.To("g1")},
		Properties: &sdkcompute.VirtualMachineProperties{
			ProvisioningState: ptr.To("Succeeded"),
			HardwareProfile: &sdkcompute.HardwareProfile{
				VMSize: ptr.To(sdkcompute.VirtualMachineSizeTypesStandardD2SV3),
			},
			InstanceView: &sdkcompute.VirtualMachineInstanceView{
				Statuses: []*sdkcompute.InstanceViewStatus{
					{Code: ptr.To("ProvisioningState/succeeded")},
					{Code: ptr.To("PowerState/running")},
				},
			},
			NetworkProfile: &sdkcompute.NetworkProfile{
				NetworkInterfaces: []*sdkcompute.NetworkInterfaceReference{
					{
						ID:         ptr.To(interfaceID(subscriptionID, rg, interfaceName(name))),
						Properties: &sdkcompute.NetworkInterfaceReferenceProperties{Primary: ptr.To(true)},
					},
				},
			},
		},
	}
}

func testInterface(subnetID, ip string) *sdknetwork.Interface {
	return &sdknetwork.Interface{
		Properties: &sdknetwork.InterfacePropertiesFormat{
			IPConfigurations: []*sdknetwork.InterfaceIPConfiguration{
				{
					Properties: &sdknetwork.InterfaceIPConfigurationPropertiesFormat{
						PrivateIPAddress: ptr.To(ip),
						Subnet:           &sdknetwork.Subnet{ID: ptr.To(subnetID)},
					},
				},
			},
		},
	}
}

func testNode(rg, name, ip string) *api.Node {
	return &api.Node{
		ID:                api.NodeID(rg, name),
		Name:              name,
		Group:             "g1",
		ResourceID:        virtualMachineID(subscriptionID, rg, name),
		Location:          location,
		VMSize:            "Standard_D2s_v3",
		ProvisioningState: api.ProvisioningStateSucceeded,
		InstanceStatus:    api.InstanceStatusRunning,
		Status:            api.NodeStatusRunning,
		Network: api.NetworkTopologyRef{
			ResourceGroup:      rg,
			VirtualNetworkName: "g1virtualnetwork",
			SubnetName:         "g1subnet",
			SubnetID:           subnetID(subscriptionID, "g1", "g1virtualnetwork", "g1subnet"),
		},
		PrivateIPs: []string{ip},
		Tags:       map[string]string{"group": "g1"},
	}
}

func TestCreateNodesFromScratch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log, "0a1b2c3d-0000-0000-0000-000000000000")

	name := "g1-0a1b2c3d"
	subnet := subnetID(subscriptionID, "g1", "g1virtualnetwork", "g1subnet")

	gomock.InOrder(
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(nil, nil),
		m.resourceGroups.EXPECT().Create(gomock.Any(), "g1", sdkresources.ResourceGroup{Location: ptr.To(location), Tags: groupTags}).
			Return(&sdkresources.ResourceGroup{ID: ptr.To(resourceGroupID(subscriptionID, "g1"))}, nil),

		m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(nil, nil),
		m.virtualNetworks.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1virtualnetwork", virtualNetworkParameters(location, "10.0.0.0/16", groupTags)).
			Return(handle("vnet"), nil),
		m.checker.EXPECT().Poll(gomock.Any(), handle("vnet")).Return(api.OperationStatusDone, nil),

		m.subnets.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork", "g1subnet").Return(nil, nil),
		m.subnets.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1virtualnetwork", "g1subnet", subnetParameters("10.0.0.0/24")).
			Return(handle("subnet"), nil),
		m.checker.EXPECT().Poll(gomock.Any(), handle("subnet")).Return(api.OperationStatusDone, nil),

		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", name+"-nic").Return(nil, nil),
		m.interfaces.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", name+"-nic", interfaceParameters(location, subnet, groupTags)).
			Return(api.OperationHandle{}, nil),

		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", name).Return(nil, nil),
		m.virtualMachines.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", name, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, vm sdkcompute.VirtualMachine) (api.OperationHandle, error) {
				if got := *vm.Properties.NetworkProfile.NetworkInterfaces[0].ID; got != interfaceID(subscriptionID, "g1", name+"-nic") {
					t.Errorf("vm attached to %s", got)
				}
				if got := *vm.Properties.StorageProfile.ImageReference.Offer; got != "0001-com-ubuntu-server-jammy" {
					t.Errorf("vm image offer %s", got)
				}
				if got := *vm.Properties.OSProfile.LinuxConfiguration.SSH.PublicKeys[0].KeyData; got != sshKey {
					t.Errorf("vm ssh key %s", got)
				}
				return handle("vm"), nil
			}),
		m.checker.EXPECT().Poll(gomock.Any(), handle("vm")).Return(api.OperationStatusPending, nil).Times(2),
		m.checker.EXPECT().Poll(gomock.Any(), handle("vm")).Return(api.OperationStatusDone, nil),

		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", name).Return(testVM("g1", name), nil),
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", name+"-nic").Return(testInterface(subnet, "10.0.0.4"), nil),
	)

	nodes, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group: "g1",
		Count: 1,
		Options: api.NodeOptions{
			SSHPublicKey: sshKey,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, diff := range deep.Equal(nodes, []*api.Node{testNode("g1", name, "10.0.0.4")}) {
		t.Error(diff)
	}

	for _, err := range testlog.AssertContainsEntries(h, []testlog.ExpectedLogEntry{
		{Level: logrus.InfoLevel, Message: "creating resourceGroup g1"},
		{Level: logrus.InfoLevel, Message: "creating virtualNetwork g1virtualnetwork"},
		{Level: logrus.InfoLevel, Message: "creating subnet g1subnet"},
		{Level: logrus.InfoLevel, Message: "creating networkInterface g1-0a1b2c3d-nic", Fields: logrus.Fields{"node": name}},
		{Level: logrus.InfoLevel, Message: "creating virtualMachine g1-0a1b2c3d", Fields: logrus.Fields{"node": name}},
		{Level: logrus.InfoLevel, Message: "node g1/g1-0a1b2c3d is Running"},
	}) {
		t.Error(err)
	}
}

func TestCreateNodesGetBeforeCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log, "0a1b2c3d-0000-0000-0000-000000000000")

	name := "g1-0a1b2c3d"
	subnet := subnetID(subscriptionID, "g1", "g1virtualnetwork", "g1subnet")

	// no Create or CreateOrUpdateAsync expectations on the shared chain: a
	// call fails the test
	m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(&sdkresources.ResourceGroup{}, nil)
	m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(&sdknetwork.VirtualNetwork{}, nil)
	m.subnets.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork", "g1subnet").Return(&sdknetwork.Subnet{}, nil)

	gomock.InOrder(
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", name+"-nic").Return(&sdknetwork.Interface{}, nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", name).Return(nil, nil),
		m.virtualMachines.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", name, gomock.Any()).Return(api.OperationHandle{}, nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", name).Return(testVM("g1", name), nil),
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", name+"-nic").Return(testInterface(subnet, "10.0.0.5"), nil),
	)

	nodes, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   1,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, diff := range deep.Equal(nodes, []*api.Node{testNode("g1", name, "10.0.0.5")}) {
		t.Error(diff)
	}
}

func TestCreateNodesAdoptsConcurrentlyCreatedNetwork(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log, "0a1b2c3d-0000-0000-0000-000000000000")

	name := "g1-0a1b2c3d"
	subnet := subnetID(subscriptionID, "g1", "g1virtualnetwork", "g1subnet")
	conflict := api.NewCloudError(http.StatusConflict, "AnotherOperationInProgress", "", "Another operation on this or dependent resource is in progress.")

	gomock.InOrder(
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(nil, nil),
		m.resourceGroups.EXPECT().Create(gomock.Any(), "g1", gomock.Any()).Return(nil, conflict),
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(&sdkresources.ResourceGroup{}, nil),

		m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(nil, nil),
		m.virtualNetworks.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1virtualnetwork", gomock.Any()).Return(api.OperationHandle{}, conflict),
		m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(&sdknetwork.VirtualNetwork{}, nil),

		m.subnets.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork", "g1subnet").Return(&sdknetwork.Subnet{}, nil),

		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", name+"-nic").Return(&sdknetwork.Interface{}, nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", name).Return(testVM("g1", name), nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", name).Return(testVM("g1", name), nil),
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", name+"-nic").Return(testInterface(subnet, "10.0.0.6"), nil),
	)

	nodes, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   1,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 || nodes[0].Status != api.NodeStatusRunning {
		t.Errorf("unexpected nodes %#v", nodes)
	}

	for _, err := range testlog.AssertContainsEntries(h, []testlog.ExpectedLogEntry{
		{Level: logrus.WarnLevel, MessageRegex: `^resourceGroup g1 is being created concurrently, adopting it: 409: AnotherOperationInProgress`},
		{Level: logrus.WarnLevel, MessageRegex: `^virtualNetwork g1virtualnetwork is being created concurrently, adopting it`},
	}) {
		t.Error(err)
	}
}

func TestCreateNodesConflictWithoutResource(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log)

	conflict := api.NewCloudError(http.StatusConflict, api.CloudErrorCodeConflict, "", "The resource group is being deleted.")

	gomock.InOrder(
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(nil, nil),
		m.resourceGroups.EXPECT().Create(gomock.Any(), "g1", gomock.Any()).Return(nil, conflict),
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(nil, nil),
	)

	_, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   1,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})
	utilerror.AssertErrorMessage(t, err, "409: Conflict: : The resource group is being deleted.")
}

func TestCreateNodesResourceGroupDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log)

	notFound := api.NewCloudError(http.StatusNotFound, "ResourceGroupNotFound", "", "Resource group 'g1' could not be found.")

	gomock.InOrder(
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(&sdkresources.ResourceGroup{}, nil),
		m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(nil, nil),
		m.virtualNetworks.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1virtualnetwork", gomock.Any()).Return(api.OperationHandle{}, notFound),
	)

	_, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   1,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})
	utilerror.AssertErrorMessage(t, err, "creating virtualNetwork g1virtualnetwork: resource group was deleted concurrently: 404: ResourceGroupNotFound: : Resource group 'g1' could not be found.")

	var cloudErr *api.CloudError
	if !errors.As(err, &cloudErr) {
		t.Errorf("got %T, wanted a wrapped cloud error", err)
	}
}

func TestCreateNodesPartialFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log)

	gomock.InOrder(
		m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(nil, nil),
		m.resourceGroups.EXPECT().Create(gomock.Any(), "g1", gomock.Any()).Return(&sdkresources.ResourceGroup{}, nil),
		m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(nil, nil),
		m.virtualNetworks.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1virtualnetwork", gomock.Any()).Return(handle("vnet"), nil),
		m.checker.EXPECT().Poll(gomock.Any(), handle("vnet")).Return(api.OperationStatusFailed, nil),
		m.checker.EXPECT().Get(gomock.Any(), handle("vnet")).Return(&operation.Operation{
			Status: "Failed",
			Error:  &api.CloudErrorBody{Code: "InvalidAddressPrefix", Message: "bad prefix"},
		}, nil),
	)

	nodes, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   3,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})
	if nodes != nil {
		t.Errorf("got nodes %v", nodes)
	}

	var partial *api.PartialProvisioningError
	if !errors.As(err, &partial) {
		t.Fatalf("got %T %v, wanted a partial provisioning error", err, err)
	}
	for _, diff := range deep.Equal(partial.Created, []string{resourceGroupID(subscriptionID, "g1")}) {
		t.Error(diff)
	}
	for _, diff := range deep.Equal(partial.Submitted, []string{virtualNetworkID(subscriptionID, "g1", "g1virtualnetwork")}) {
		t.Error(diff)
	}
	if partial.FailedStep != string(stateNetworkReady) {
		t.Errorf("failed step %s", partial.FailedStep)
	}

	var failed *api.OperationFailedError
	if !errors.As(err, &failed) {
		t.Errorf("got %v, wanted an operation failed error", err)
	}
}

func TestCreateNodesPerNodeFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log,
		"aaaaaaaa-0000-0000-0000-000000000000",
		"bbbbbbbb-0000-0000-0000-000000000000",
	)
	emitter := mock_metrics.NewMockEmitter(ctrl)
	p.m = emitter

	subnet := subnetID(subscriptionID, "g1", "g1virtualnetwork", "g1subnet")

	emitter.EXPECT().EmitFloat("step.duration", gomock.Any(), gomock.Any()).AnyTimes()
	emitter.EXPECT().EmitGauge("provisioner.nodes", int64(1), map[string]string{"group": "g1", "result": "created"})
	emitter.EXPECT().EmitGauge("provisioner.nodes", int64(1), map[string]string{"group": "g1", "result": "failed"})

	m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(&sdkresources.ResourceGroup{}, nil)
	m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(&sdknetwork.VirtualNetwork{}, nil)
	m.subnets.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork", "g1subnet").Return(&sdknetwork.Subnet{}, nil)

	// g1-aaaaaaaa succeeds
	gomock.InOrder(
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-aaaaaaaa-nic").Return(nil, nil),
		m.interfaces.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1-aaaaaaaa-nic", gomock.Any()).Return(api.OperationHandle{}, nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-aaaaaaaa").Return(nil, nil),
		m.virtualMachines.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1-aaaaaaaa", gomock.Any()).Return(handle("vm-a"), nil),
		m.checker.EXPECT().Poll(gomock.Any(), handle("vm-a")).Return(api.OperationStatusDone, nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-aaaaaaaa").Return(testVM("g1", "g1-aaaaaaaa"), nil),
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-aaaaaaaa-nic").Return(testInterface(subnet, "10.0.0.4"), nil),
	)

	// g1-bbbbbbbb fails while the virtual machine is provisioning
	gomock.InOrder(
		m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-bbbbbbbb-nic").Return(nil, nil),
		m.interfaces.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1-bbbbbbbb-nic", gomock.Any()).Return(api.OperationHandle{}, nil),
		m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-bbbbbbbb").Return(nil, nil),
		m.virtualMachines.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1-bbbbbbbb", gomock.Any()).Return(handle("vm-b"), nil),
		m.checker.EXPECT().Poll(gomock.Any(), handle("vm-b")).Return(api.OperationStatusFailed, nil),
		m.checker.EXPECT().Get(gomock.Any(), handle("vm-b")).Return(&operation.Operation{Status: "Failed"}, nil),
	)

	nodes, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   2,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})

	for _, diff := range deep.Equal(nodes, []*api.Node{testNode("g1", "g1-aaaaaaaa", "10.0.0.4")}) {
		t.Error(diff)
	}

	var partial *api.PartialProvisioningError
	if !errors.As(err, &partial) {
		t.Fatalf("got %T %v, wanted a partial provisioning error", err, err)
	}
	for _, diff := range deep.Equal(partial.Created, []string{interfaceID(subscriptionID, "g1", "g1-bbbbbbbb-nic")}) {
		t.Error(diff)
	}
	for _, diff := range deep.Equal(partial.Submitted, []string{virtualMachineID(subscriptionID, "g1", "g1-bbbbbbbb")}) {
		t.Error(diff)
	}
	if partial.FailedStep != string(stateVMReady) {
		t.Errorf("failed step %s", partial.FailedStep)
	}
}

func TestCreateNodesTimeout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log, "0a1b2c3d-0000-0000-0000-000000000000")
	p.waiter.(*operation.Waiter).Backoff = retry.Backoff{
		Timeout:       10 * time.Second,
		InitialPeriod: time.Second,
		MaxPeriod:     5 * time.Second,
		Clock:         testclock.NewSteppingClock(),
	}

	m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(&sdkresources.ResourceGroup{}, nil)
	m.virtualNetworks.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork").Return(&sdknetwork.VirtualNetwork{}, nil)
	m.subnets.EXPECT().GetIfExists(gomock.Any(), "g1", "g1virtualnetwork", "g1subnet").Return(&sdknetwork.Subnet{}, nil)
	m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d-nic").Return(&sdknetwork.Interface{}, nil)
	m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d").Return(nil, nil)
	m.virtualMachines.EXPECT().CreateOrUpdateAsync(gomock.Any(), "g1", "g1-0a1b2c3d", gomock.Any()).Return(handle("vm"), nil)
	m.checker.EXPECT().Poll(gomock.Any(), handle("vm")).Return(api.OperationStatusPending, nil).AnyTimes()

	_, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group:   "g1",
		Count:   1,
		Options: api.NodeOptions{SSHPublicKey: sshKey},
	})

	var timeout *api.TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("got %T %v, wanted a timeout error", err, err)
	}
	if timeout.Bound != 10*time.Second {
		t.Errorf("bound %s", timeout.Bound)
	}
	if timeout.LastStatus != api.OperationStatusPending {
		t.Errorf("last status %s", timeout.LastStatus)
	}
}

func TestCreateNodesExistingSubnetID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, log := testlog.NewCapturingLogger()
	p, m := newTestProvisioner(ctrl, log, "0a1b2c3d-0000-0000-0000-000000000000")

	id := subnetID(subscriptionID, "netrg", "shared", "workers")

	m.resourceGroups.EXPECT().GetIfExists(gomock.Any(), "g1").Return(&sdkresources.ResourceGroup{}, nil)
	m.subnets.EXPECT().GetIfExists(gomock.Any(), "netrg", "shared", "workers").Return(nil, nil)

	_, err := p.CreateNodes(ctx, &api.NodeRequest{
		Group: "g1",
		Count: 1,
		Options: api.NodeOptions{
			SSHPublicKey: sshKey,
			SubnetID:     id,
		},
	})
	utilerror.AssertErrorMessage(t, err, "404: NotFound: options.subnetId: The subnet '"+id+"' could not be found.")
}

func TestCreateNodesValidation(t *testing.T) {
	for _, tt := range []struct {
		name    string
		req     *api.NodeRequest
		wantErr string
	}{
		{
			name:    "no group",
			req:     &api.NodeRequest{Count: 1, Options: api.NodeOptions{SSHPublicKey: sshKey}},
			wantErr: "invalid argument group: must not be empty",
		},
		{
			name:    "no nodes",
			req:     &api.NodeRequest{Group: "g1", Options: api.NodeOptions{SSHPublicKey: sshKey}},
			wantErr: "invalid argument count: must be at least 1, got 0",
		},
		{
			name:    "no ssh key",
			req:     &api.NodeRequest{Group: "g1", Count: 1},
			wantErr: "invalid argument options.sshPublicKey: must not be empty",
		},
		{
			name: "subnet outside virtual network",
			req: &api.NodeRequest{Group: "g1", Count: 1, Options: api.NodeOptions{
				SSHPublicKey:        sshKey,
				SubnetAddressPrefix: "192.168.0.0/24",
			}},
			wantErr: "invalid argument options.subnetAddressPrefix: subnet 192.168.0.0/24 is not contained in virtual network 10.0.0.0/16",
		},
		{
			name: "subnet id of another resource type",
			req: &api.NodeRequest{Group: "g1", Count: 1, Options: api.NodeOptions{
				SSHPublicKey: sshKey,
				SubnetID:     virtualNetworkID(subscriptionID, "netrg", "shared"),
			}},
			wantErr: `invalid argument options.subnetId: "` + virtualNetworkID(subscriptionID, "netrg", "shared") + `" is not a subnet resource ID`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, log := testlog.NewCapturingLogger()
			p, _ := newTestProvisioner(ctrl, log)

			_, err := p.CreateNodes(context.Background(), tt.req)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}

	t.Run("no location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, log := testlog.NewCapturingLogger()
		p, _ := newTestProvisioner(ctrl, log)
		p.config.Location = ""

		_, err := p.CreateNodes(context.Background(), &api.NodeRequest{Group: "g1", Count: 1, Options: api.NodeOptions{SSHPublicKey: sshKey}})
		utilerror.AssertErrorMessage(t, err, "invalid argument location: must be set on the request or in configuration")
	})
}

func TestResourceGroupPrecedence(t *testing.T) {
	for _, tt := range []struct {
		name       string
		configured string
		requested  string
		want       string
	}{
		{
			name: "group name",
			want: "g1",
		},
		{
			name:       "configured",
			configured: "shared",
			want:       "shared",
		},
		{
			name:       "requested",
			configured: "shared",
			requested:  "mine",
			want:       "mine",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, log := testlog.NewCapturingLogger()
			p, _ := newTestProvisioner(ctrl, log)
			p.config.ResourceGroup = tt.configured

			topology, err := p.newTopology(&api.NodeRequest{Group: "g1", Count: 1, Options: api.NodeOptions{
				SSHPublicKey:  sshKey,
				ResourceGroup: tt.requested,
			}})
			if err != nil {
				t.Fatal(err)
			}
			if topology.ref.ResourceGroup != tt.want {
				t.Errorf("got %s, want %s", topology.ref.ResourceGroup, tt.want)
			}
		})
	}
}

func TestGetNode(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name    string
		id      string
		mocks   func(*mocks)
		want    *api.Node
		wantErr string
	}{
		{
			name: "running",
			id:   "g1/g1-0a1b2c3d",
			mocks: func(m *mocks) {
				m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d").Return(testVM("g1", "g1-0a1b2c3d"), nil)
				m.interfaces.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d-nic").
					Return(testInterface(subnetID(subscriptionID, "g1", "g1virtualnetwork", "g1subnet"), "10.0.0.4"), nil)
			},
			want: testNode("g1", "g1-0a1b2c3d", "10.0.0.4"),
		},
		{
			name: "missing",
			id:   "g1/gone",
			mocks: func(m *mocks) {
				m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "gone").Return(nil, nil)
			},
			wantErr: "404: NotFound: id: The node 'g1/gone' could not be found.",
		},
		{
			name:    "malformed id",
			id:      "g1-0a1b2c3d",
			wantErr: `invalid argument id: "g1-0a1b2c3d" is not of the form resourceGroup/name`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, log := testlog.NewCapturingLogger()
			p, m := newTestProvisioner(ctrl, log)
			if tt.mocks != nil {
				tt.mocks(m)
			}

			got, err := p.GetNode(ctx, tt.id)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestDestroyNode(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name    string
		mocks   func(*mocks)
		wantErr string
	}{
		{
			name: "virtual machine then network interface",
			mocks: func(m *mocks) {
				gomock.InOrder(
					m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d").Return(testVM("g1", "g1-0a1b2c3d"), nil),
					m.virtualMachines.EXPECT().DeleteAsync(gomock.Any(), "g1", "g1-0a1b2c3d").Return(handle("delete-vm"), nil),
					m.checker.EXPECT().Poll(gomock.Any(), handle("delete-vm")).Return(api.OperationStatusPending, nil),
					m.checker.EXPECT().Poll(gomock.Any(), handle("delete-vm")).Return(api.OperationStatusDone, nil),
					m.interfaces.EXPECT().DeleteAsync(gomock.Any(), "g1", "g1-0a1b2c3d-nic").Return(api.OperationHandle{}, nil),
				)
			},
		},
		{
			name: "leftover network interface",
			mocks: func(m *mocks) {
				gomock.InOrder(
					m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d").Return(nil, nil),
					m.interfaces.EXPECT().DeleteAsync(gomock.Any(), "g1", "g1-0a1b2c3d-nic").Return(handle("delete-nic"), nil),
					m.checker.EXPECT().Poll(gomock.Any(), handle("delete-nic")).Return(api.OperationStatusDone, nil),
				)
			},
		},
		{
			name: "virtual machine delete fails",
			mocks: func(m *mocks) {
				gomock.InOrder(
					m.virtualMachines.EXPECT().GetIfExists(gomock.Any(), "g1", "g1-0a1b2c3d").Return(testVM("g1", "g1-0a1b2c3d"), nil),
					m.virtualMachines.EXPECT().DeleteAsync(gomock.Any(), "g1", "g1-0a1b2c3d").
						Return(api.OperationHandle{}, api.NewCloudError(http.StatusConflict, "OperationNotAllowed", "", "Operation is not allowed.")),
				)
			},
			wantErr: "409: OperationNotAllowed: : Operation is not allowed.",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, log := testlog.NewCapturingLogger()
			p, m := newTestProvisioner(ctrl, log)
			tt.mocks(m)

			err := p.DestroyNode(ctx, "g1/g1-0a1b2c3d")
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
		})
	}
}
