package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"testing"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg. An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()
	if err == nil && wantMsg != "" {
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	}
	if err != nil && err.Error() != wantMsg {
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertErrorIs asserts that err wraps target.
func AssertErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if target == nil {
		if err != nil {
			t.Errorf("got error '%v', but wanted no error", err)
		}
		return
	}
	if !errors.Is(err, target) {
		t.Errorf("got error '%v', but wanted an error wrapping '%v'", err, target)
	}
}
