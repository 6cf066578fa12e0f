package imagecapture

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sdkcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	sdkstorage "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/ptr"

	"github.com/cloudbinding/provisioner/pkg/api"
	"github.com/cloudbinding/provisioner/pkg/nodestate"
	"github.com/cloudbinding/provisioner/pkg/operation"
	"github.com/cloudbinding/provisioner/pkg/util/retry"
	"github.com/cloudbinding/provisioner/pkg/util/steps"
)

type captureState string

const (
	stateDeallocate       captureState = "DEALLOCATE"
	stateGeneralize       captureState = "GENERALIZE"
	stateCaptureSubmitted captureState = "CAPTURE_SUBMITTED"
	stateCapturePoll      captureState = "CAPTURE_POLL"
	stateExtract          captureState = "EXTRACT"
	stateDone             captureState = "DONE"
	stateFailed           captureState = "FAILED"
)

// capture is one run of the workflow.
type capture struct {
	w   *workflow
	log *logrus.Entry
	req api.ImageCaptureRequest

	vmID           string
	location       string
	storageAccount string
	power          *api.InstanceStatus

	handle api.OperationHandle
	disks  disks
	polls  int

	state  captureState
	result *api.ImageCaptureResult
}

// Capture generalizes the virtual machine and captures its disks into the
// derived storage account. Azure only generalizes a deallocated virtual
// machine, so one whose instance view reports another power state is
// deallocated first. A generalized virtual machine can no longer be started.
func (w *workflow) Capture(ctx context.Context, req *api.ImageCaptureRequest) (*api.ImageCaptureResult, error) {
	for _, f := range []struct{ field, value string }{
		{"resourceGroup", req.ResourceGroup},
		{"vmName", req.VMName},
		{"imageName", req.ImageName},
	} {
		if f.value == "" {
			return nil, &api.InvalidArgumentError{Field: f.field, Message: "must not be empty"}
		}
	}

	c := &capture{
		w:   w,
		req: *req,
		log: w.log.WithFields(logrus.Fields{
			"resourceGroup": req.ResourceGroup,
			"vm":            req.VMName,
			"image":         req.ImageName,
		}),
		storageAccount: DeriveStorageAccountName(api.NodeID(req.ResourceGroup, req.VMName)),
	}
	if c.req.Container == "" {
		c.req.Container = DefaultContainer
	}

	err := steps.Run(ctx, c.log, w.m, []steps.Step{
		steps.Action(c.readVirtualMachine),
		steps.Action(c.ensureStorageAccount),
		steps.Action(c.deallocate),
		steps.Action(c.generalize),
		steps.Action(c.submitCapture),
		steps.Condition(c.captureOutputAvailable, w.captureBackoff, c.extractionTimedOut),
		steps.Action(c.extract),
	})
	if w.m != nil {
		w.m.EmitGauge("imagecapture.polls", int64(c.polls), map[string]string{"state": string(c.state)})
	}
	if err != nil {
		c.log.Warnf("capture failed in state %s", c.state)
		c.state = stateFailed
		return nil, err
	}

	return c.result, nil
}

func (c *capture) readVirtualMachine(ctx context.Context) error {
	vm, err := c.w.virtualMachines.GetIfExists(ctx, c.req.ResourceGroup, c.req.VMName)
	if err != nil {
		return err
	}
	if vm == nil {
		return api.NewCloudError(http.StatusNotFound, api.CloudErrorCodeNotFound, "vmName", "The virtual machine '%s' could not be found.", api.NodeID(c.req.ResourceGroup, c.req.VMName))
	}

	c.vmID = ptr.Deref(vm.ID, "")
	c.location = ptr.Deref(vm.Location, "")
	if vm.Properties != nil {
		c.power = nodestate.InstanceStatusOf(vm.Properties.InstanceView)
	}
	return nil
}

func (c *capture) ensureStorageAccount(ctx context.Context) error {
	account, err := c.w.accounts.GetIfExists(ctx, c.req.ResourceGroup, c.storageAccount)
	if err != nil || account != nil {
		return err
	}

	c.log.Infof("creating storage account %s", c.storageAccount)
	handle, err := c.w.accounts.CreateAsync(ctx, c.req.ResourceGroup, c.storageAccount, sdkstorage.AccountCreateParameters{
		Kind:     ptr.To(sdkstorage.KindStorageV2),
		Location: &c.location,
		SKU: &sdkstorage.SKU{
			Name: ptr.To(sdkstorage.SKUNameStandardLRS),
		},
		Properties: &sdkstorage.AccountPropertiesCreateParameters{
			AllowBlobPublicAccess: ptr.To(false),
			MinimumTLSVersion:     ptr.To(sdkstorage.MinimumTLSVersionTLS12),
		},
	})
	if err != nil {
		return err
	}

	return c.w.waiter.Wait(ctx, "storageAccount "+c.storageAccount, handle)
}

// deallocate is a no-op when the power state is unknown or already
// deallocated.
func (c *capture) deallocate(ctx context.Context) error {
	if c.power == nil || *c.power == api.InstanceStatusDeallocated {
		return nil
	}

	c.state = stateDeallocate
	c.log.Infof("deallocating virtual machine %s (power state %s)", c.req.VMName, *c.power)
	handle, err := c.w.virtualMachines.DeallocateAsync(ctx, c.req.ResourceGroup, c.req.VMName)
	if err != nil {
		return err
	}

	return c.w.waiter.Wait(ctx, "deallocate "+c.req.VMName, handle)
}

func (c *capture) generalize(ctx context.Context) error {
	c.state = stateGeneralize
	_, err := c.w.virtualMachines.Generalize(ctx, c.req.ResourceGroup, c.req.VMName, nil)
	return err
}

func (c *capture) submitCapture(ctx context.Context) error {
	handle, result, err := c.w.virtualMachines.CaptureAsync(ctx, c.req.ResourceGroup, c.req.VMName, sdkcompute.VirtualMachineCaptureParameters{
		DestinationContainerName: &c.req.Container,
		VhdPrefix:                &c.req.ImageName,
		OverwriteVhds:            ptr.To(true),
	})
	if err != nil {
		return err
	}

	c.state = stateCaptureSubmitted
	c.handle = handle

	if handle.IsZero() && result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		c.disks, err = decodeDisks(b)
		if err != nil {
			return &api.ExtractionError{Handle: handle, Reason: err.Error()}
		}
	}

	return nil
}

// captureOutputAvailable polls the capture operation until its output names
// both disks.
func (c *capture) captureOutputAvailable(ctx context.Context) (bool, error) {
	c.state = stateCapturePoll
	if c.disks.complete() {
		return true, nil
	}
	if c.handle.IsZero() {
		return false, retry.Permanent(&api.ExtractionError{Handle: c.handle, Reason: "synchronous capture response did not name both disks"})
	}

	c.polls++
	op, err := c.w.checker.Get(ctx, c.handle)
	if err != nil {
		return false, operation.PermanentUnlessRetryable(err)
	}

	if operation.Classify(c.log, op) == api.OperationStatusFailed {
		return false, retry.Permanent(&api.OperationFailedError{
			Operation: "capture " + c.req.VMName,
			Handle:    c.handle,
			Status:    op.Status,
			Body:      op.Error,
		})
	}

	d, err := decodeDisks(op.Output())
	if err != nil {
		return false, retry.Permanent(&api.ExtractionError{Handle: c.handle, Reason: err.Error()})
	}
	c.disks = d

	return c.disks.complete(), nil
}

func (c *capture) extractionTimedOut() error {
	var missing []string
	if c.disks.os == nil || *c.disks.os == "" {
		missing = append(missing, "osDisk.name")
	}
	if c.disks.data == nil || *c.disks.data == "" {
		missing = append(missing, "dataDisks[0].name")
	}
	return &api.ExtractionError{
		Handle: c.handle,
		Reason: fmt.Sprintf("%v still missing after %d polls in %s", missing, c.polls, c.w.captureBackoff.Timeout),
	}
}

func (c *capture) extract(ctx context.Context) error {
	c.state = stateExtract

	c.result = &api.ImageCaptureResult{
		SourceVMID:     c.vmID,
		ImageName:      c.req.ImageName,
		Group:          c.w.namespace + "/" + c.req.ResourceGroup,
		StorageAccount: c.w.namespace + "/" + c.storageAccount,
		Container:      c.req.Container,
		OSDisk:         *c.disks.os,
		DataDisk:       *c.disks.data,
		Location:       c.location,
	}

	c.state = stateDone
	c.log.Infof("captured image %s", c.result.ID())
	return nil
}
