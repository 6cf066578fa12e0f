package fake

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sync"

	"github.com/cloudbinding/provisioner/pkg/util/uuid"
)

type fakeGenerator struct {
	mu         sync.Mutex
	words      []string
	currentPos int
}

// NewGenerator returns a Generator handing out predefinedWords in order and
// the empty string once they run out.
func NewGenerator(predefinedWords []string) uuid.Generator {
	return &fakeGenerator{
		words: predefinedWords,
	}
}

func (f *fakeGenerator) Generate() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.currentPos >= len(f.words) {
		return ""
	}
	w := f.words[f.currentPos]
	f.currentPos++
	return w
}
