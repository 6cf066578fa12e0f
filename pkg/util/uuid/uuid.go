package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/google/uuid"
)

// Generator produces random identifiers.
type Generator interface {
	Generate() string
}

type defaultGenerator struct{}

func (defaultGenerator) Generate() string {
	return uuid.NewString()
}

var DefaultGenerator Generator = defaultGenerator{}

func IsValid(u string) bool {
	return uuid.Validate(u) == nil
}
