package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"
)

// NodeStatus is the provider-independent status of a node.
type NodeStatus string

const (
	NodeStatusPending      NodeStatus = "Pending"
	NodeStatusRunning      NodeStatus = "Running"
	NodeStatusSuspended    NodeStatus = "Suspended"
	NodeStatusError        NodeStatus = "Error"
	NodeStatusTerminated   NodeStatus = "Terminated"
	NodeStatusUnrecognized NodeStatus = "Unrecognized"
)

// NetworkTopologyRef identifies the resource group, virtual network and subnet
// that nodes of one request are attached to.
type NetworkTopologyRef struct {
	ResourceGroup      string `json:"resourceGroup"`
	VirtualNetworkName string `json:"virtualNetworkName"`
	SubnetName         string `json:"subnetName"`
	SubnetID           string `json:"subnetId,omitempty"`
}

// NodeRequest asks for Count nodes of the named group.
type NodeRequest struct {
	Group    string      `json:"group"`
	Count    int         `json:"count"`
	Location string      `json:"location,omitempty"`
	Options  NodeOptions `json:"options,omitempty"`
}

// NodeOptions carries per-request overrides. Empty fields fall back to
// configured defaults.
type NodeOptions struct {
	ResourceGroup string `json:"resourceGroup,omitempty"`

	VirtualNetworkName          string `json:"virtualNetworkName,omitempty"`
	VirtualNetworkAddressPrefix string `json:"virtualNetworkAddressPrefix,omitempty"`
	SubnetName                  string `json:"subnetName,omitempty"`
	SubnetAddressPrefix         string `json:"subnetAddressPrefix,omitempty"`

	// SubnetID selects an existing subnet by ARM resource ID. When set, the
	// virtual network and subnet are never created.
	SubnetID string `json:"subnetId,omitempty"`

	VMSize        string          `json:"vmSize,omitempty"`
	Image         *ImageReference `json:"image,omitempty"`
	AdminUsername string          `json:"adminUsername,omitempty"`
	SSHPublicKey  string          `json:"sshPublicKey,omitempty"`

	Tags map[string]string `json:"tags,omitempty"`
}

// ImageReference selects a marketplace image or, when ID is set, a custom
// image by resource ID.
type ImageReference struct {
	Publisher string `json:"publisher,omitempty"`
	Offer     string `json:"offer,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Version   string `json:"version,omitempty"`
	ID        string `json:"id,omitempty"`
}

// ParseImageReference accepts either a resource ID or a
// publisher:offer:sku:version URN.
func ParseImageReference(s string) (*ImageReference, error) {
	if strings.HasPrefix(s, "/") {
		return &ImageReference{ID: s}, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return nil, &InvalidArgumentError{Field: "image", Message: fmt.Sprintf("%q is not a publisher:offer:sku:version URN or resource ID", s)}
	}
	for _, p := range parts {
		if p == "" {
			return nil, &InvalidArgumentError{Field: "image", Message: fmt.Sprintf("%q has an empty URN segment", s)}
		}
	}
	return &ImageReference{Publisher: parts[0], Offer: parts[1], SKU: parts[2], Version: parts[3]}, nil
}

func (r *ImageReference) String() string {
	if r.ID != "" {
		return r.ID
	}
	return strings.Join([]string{r.Publisher, r.Offer, r.SKU, r.Version}, ":")
}

// Node is a provisioned virtual machine.
type Node struct {
	// ID is the node identifier, resourceGroup/name.
	ID         string `json:"id"`
	Name       string `json:"name"`
	Group      string `json:"group,omitempty"`
	ResourceID string `json:"resourceId,omitempty"`
	Location   string `json:"location,omitempty"`
	VMSize     string `json:"vmSize,omitempty"`

	ProvisioningState ProvisioningState `json:"provisioningState,omitempty"`
	InstanceStatus    InstanceStatus    `json:"instanceStatus,omitempty"`
	Status            NodeStatus        `json:"status"`

	Network    NetworkTopologyRef `json:"network"`
	PrivateIPs []string           `json:"privateIPs,omitempty"`
	Tags       map[string]string  `json:"tags,omitempty"`
}

// NodeID returns the identifier used for a node named name in resourceGroup.
func NodeID(resourceGroup, name string) string {
	return resourceGroup + "/" + name
}

// SplitNodeID is the inverse of NodeID.
func SplitNodeID(id string) (resourceGroup, name string, err error) {
	resourceGroup, name, found := strings.Cut(id, "/")
	if !found || resourceGroup == "" || name == "" || strings.Contains(name, "/") {
		return "", "", &InvalidArgumentError{Field: "id", Message: fmt.Sprintf("%q is not of the form resourceGroup/name", id)}
	}
	return resourceGroup, name, nil
}
