package subnet

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net"

	"github.com/apparentlymart/go-cidr/cidr"
)

const defaultPrefixLength = 24

// DefaultPrefix returns the address prefix a subnet gets when the request
// names none: the first /24 of vnetPrefix, or the whole of vnetPrefix when it
// is already /24 or narrower.
func DefaultPrefix(vnetPrefix string) (string, error) {
	_, vnet, err := net.ParseCIDR(vnetPrefix)
	if err != nil {
		return "", err
	}

	ones, bits := vnet.Mask.Size()
	if bits != 32 {
		return "", fmt.Errorf("address prefix %s is not IPv4", vnetPrefix)
	}
	if ones >= defaultPrefixLength {
		return vnet.String(), nil
	}

	first, err := cidr.Subnet(vnet, defaultPrefixLength-ones, 0)
	if err != nil {
		return "", err
	}

	return first.String(), nil
}

// VerifyWithin returns an error unless subnetPrefix lies inside vnetPrefix.
func VerifyWithin(vnetPrefix, subnetPrefix string) error {
	_, vnet, err := net.ParseCIDR(vnetPrefix)
	if err != nil {
		return err
	}
	_, subnet, err := net.ParseCIDR(subnetPrefix)
	if err != nil {
		return err
	}

	if err := cidr.VerifyNoOverlap([]*net.IPNet{subnet}, vnet); err != nil {
		return fmt.Errorf("subnet %s is not contained in virtual network %s", subnetPrefix, vnetPrefix)
	}

	return nil
}
