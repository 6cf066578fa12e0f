package imagecapture

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"strings"
	"unicode"
)

const (
	storageAccountSuffix    = "stor"
	storageAccountMaxLength = 24
)

// DeriveStorageAccountName maps a virtual machine identifier to the name of
// the storage account its images are captured into. Non-alphanumerics are
// dropped, the rest is lower-cased and truncated so that the "stor" suffix
// always fits in the 24 characters Azure allows.
func DeriveStorageAccountName(vmID string) string {
	var b strings.Builder
	for _, r := range vmID {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	name := b.String()
	return name[:min(len(name), storageAccountMaxLength-len(storageAccountSuffix))] + storageAccountSuffix
}

// captureOutput is the part of the capture template we read.
type captureOutput struct {
	Resources []struct {
		Properties struct {
			StorageProfile struct {
				OSDisk *struct {
					Name *string `json:"name"`
				} `json:"osDisk"`
				DataDisks []struct {
					Name *string `json:"name"`
				} `json:"dataDisks"`
			} `json:"storageProfile"`
		} `json:"properties"`
	} `json:"resources"`
}

// disks holds the disk names found in a capture output. Either may be nil.
type disks struct {
	os   *string
	data *string
}

func (d disks) complete() bool {
	return d.os != nil && *d.os != "" && d.data != nil && *d.data != ""
}

// decodeDisks reads resources[0].properties.storageProfile.osDisk.name and
// dataDisks[0].name. An empty or partial payload is not an error.
func decodeDisks(raw json.RawMessage) (disks, error) {
	var d disks
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}

	var out captureOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return d, err
	}
	if len(out.Resources) == 0 {
		return d, nil
	}

	profile := out.Resources[0].Properties.StorageProfile
	if profile.OSDisk != nil {
		d.os = profile.OSDisk.Name
	}
	if len(profile.DataDisks) > 0 {
		d.data = profile.DataDisks[0].Name
	}
	return d, nil
}
