package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ImageCaptureRequest asks for the virtual machine VMName in ResourceGroup to
// be generalized and captured as ImageName.
type ImageCaptureRequest struct {
	ResourceGroup string `json:"resourceGroup"`
	VMName        string `json:"vmName"`
	ImageName     string `json:"imageName"`
	// Container receives the captured VHDs. Empty means the default
	// container.
	Container string `json:"container,omitempty"`
}

// ImageCaptureResult references a captured image. Group and StorageAccount are
// prefixed with the configured image namespace.
type ImageCaptureResult struct {
	SourceVMID     string `json:"sourceVmId"`
	ImageName      string `json:"imageName"`
	Group          string `json:"group"`
	StorageAccount string `json:"storageAccount"`
	Container      string `json:"container"`
	OSDisk         string `json:"osDisk"`
	DataDisk       string `json:"dataDisk"`
	Location       string `json:"location"`
}

// ID returns Group/StorageAccount/ImageName.
func (r *ImageCaptureResult) ID() string {
	return r.Group + "/" + r.StorageAccount + "/" + r.ImageName
}
