package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	sdkcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	sdkresources "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
)

func resourceGroupID(subscriptionID, resourceGroup string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, resourceGroup)
}

func virtualNetworkID(subscriptionID, resourceGroup, vnet string) string {
	return resourceGroupID(subscriptionID, resourceGroup) + "/providers/Microsoft.Network/virtualNetworks/" + vnet
}

func subnetID(subscriptionID, resourceGroup, vnet, subnet string) string {
	return virtualNetworkID(subscriptionID, resourceGroup, vnet) + "/subnets/" + subnet
}

func interfaceID(subscriptionID, resourceGroup, nic string) string {
	return resourceGroupID(subscriptionID, resourceGroup) + "/providers/Microsoft.Network/networkInterfaces/" + nic
}

func virtualMachineID(subscriptionID, resourceGroup, vm string) string {
	return resourceGroupID(subscriptionID, resourceGroup) + "/providers/Microsoft.Compute/virtualMachines/" + vm
}

func interfaceName(node string) string {
	return node + "-nic"
}

func osDiskName(node string) string {
	return node + "-osdisk"
}

func resourceGroupParameters(location string, tags map[string]*string) sdkresources.ResourceGroup {
	return sdkresources.ResourceGroup{
		Location: &location,
		Tags:     tags,
	}
}

func virtualNetworkParameters(location, addressPrefix string, tags map[string]*string) sdknetwork.VirtualNetwork {
	return sdknetwork.VirtualNetwork{
		Location: &location,
		Tags:     tags,
		Properties: &sdknetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &sdknetwork.AddressSpace{
				AddressPrefixes: []*string{&addressPrefix},
			},
		},
	}
}

func subnetParameters(addressPrefix string) sdknetwork.Subnet {
	return sdknetwork.Subnet{
		Properties: &sdknetwork.SubnetPropertiesFormat{
			AddressPrefix: &addressPrefix,
		},
	}
}

func interfaceParameters(location, subnetID string, tags map[string]*string) sdknetwork.Interface {
	return sdknetwork.Interface{
		Location: &location,
		Tags:     tags,
		Properties: &sdknetwork.InterfacePropertiesFormat{
			IPConfigurations: []*sdknetwork.InterfaceIPConfiguration{
				{
					Name: ptr.To("ipconfig"),
					Properties: &sdknetwork.InterfaceIPConfigurationPropertiesFormat{
						Primary:                   ptr.To(true),
						PrivateIPAllocationMethod: ptr.To(sdknetwork.IPAllocationMethodDynamic),
						Subnet: &sdknetwork.Subnet{
							ID: &subnetID,
						},
					},
				},
			},
		},
	}
}

func imageReference(image *api.ImageReference) *sdkcompute.ImageReference {
	if image.ID != "" {
		return &sdkcompute.ImageReference{
			ID: &image.ID,
		}
	}
	return &sdkcompute.ImageReference{
		Publisher: &image.Publisher,
		Offer:     &image.Offer,
		SKU:       &image.SKU,
		Version:   &image.Version,
	}
}

type virtualMachineSpec struct {
	name          string
	location      string
	vmSize        string
	image         *api.ImageReference
	adminUsername string
	sshPublicKey  string
	interfaceID   string
	tags          map[string]*string
}

func virtualMachineParameters(s *virtualMachineSpec) sdkcompute.VirtualMachine {
	return sdkcompute.VirtualMachine{
		Location: &s.location,
		Tags:     s.tags,
		Properties: &sdkcompute.VirtualMachineProperties{
			HardwareProfile: &sdkcompute.HardwareProfile{
				VMSize: ptr.To(sdkcompute.VirtualMachineSizeTypes(s.vmSize)),
			},
			StorageProfile: &sdkcompute.StorageProfile{
				ImageReference: imageReference(s.image),
				OSDisk: &sdkcompute.OSDisk{
					Name:         ptr.To(osDiskName(s.name)),
					CreateOption: ptr.To(sdkcompute.DiskCreateOptionTypesFromImage),
					DeleteOption: ptr.To(sdkcompute.DiskDeleteOptionTypesDelete),
					ManagedDisk: &sdkcompute.ManagedDiskParameters{
						StorageAccountType: ptr.To(sdkcompute.StorageAccountTypesStandardSSDLRS),
					},
				},
			},
			OSProfile: &sdkcompute.OSProfile{
				ComputerName:  &s.name,
				AdminUsername: &s.adminUsername,
				LinuxConfiguration: &sdkcompute.LinuxConfiguration{
					DisablePasswordAuthentication: ptr.To(true),
					SSH: &sdkcompute.SSHConfiguration{
						PublicKeys: []*sdkcompute.SSHPublicKey{
							{
								Path:    ptr.To(fmt.Sprintf("/home/%s/.ssh/authorized_keys", s.adminUsername)),
								KeyData: &s.sshPublicKey,
							},
						},
					},
				},
			},
			NetworkProfile: &sdkcompute.NetworkProfile{
				NetworkInterfaces: []*sdkcompute.NetworkInterfaceReference{
					{
						ID: &s.interfaceID,
						Properties: &sdkcompute.NetworkInterfaceReferenceProperties{
							Primary: ptr.To(true),
						},
					},
				},
			},
		},
	}
}
