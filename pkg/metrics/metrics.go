package metrics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/cloudbinding/provisioner/pkg/$GOPACKAGE Emitter

// Emitter represents metrics interface
type Emitter interface {
	EmitFloat(string, float64, map[string]string)
	EmitGauge(string, int64, map[string]string)
}

// Interface is an Emitter which must be flushed before the process exits.
type Interface interface {
	Emitter
	Close() error
}
