package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
)

// ExpectedLogEntry contains a log message and log level which is expected to be
// emitted by the logging system.
type ExpectedLogEntry struct {
	// The message to be matched exactly. Conflicts with MessageRegex.
	Message string

	// The message to be matched as regex. Conflicts with Message.
	MessageRegex string

	// The logging level to be matched.
	Level logrus.Level

	// Fields, when set, must all be present on the entry with equal values.
	Fields logrus.Fields
}

func (ex ExpectedLogEntry) assertMatches(e logrus.Entry) string {
	if ex.Message != "" && ex.MessageRegex != "" {
		return "ExpectedLogEntry has both Message and MessageRegex set!"
	}

	if e.Level != ex.Level {
		return fmt.Sprintf("level: found %s, expected %s", e.Level, ex.Level)
	}

	switch {
	case ex.Message != "":
		if e.Message != ex.Message {
			return fmt.Sprintf("message: found `%s`, expected `%s`", e.Message, ex.Message)
		}
	case ex.MessageRegex != "":
		matched, err := regexp.MatchString(ex.MessageRegex, e.Message)
		if err != nil {
			return err.Error()
		}
		if !matched {
			return fmt.Sprintf("message: found `%s`, expected to match `%s`", e.Message, ex.MessageRegex)
		}
	default:
		return "ExpectedLogEntry has neither Message or MessageRegex set!"
	}

	for k, v := range ex.Fields {
		if e.Data[k] != v {
			return fmt.Sprintf("field %s: found `%v`, expected `%v`", k, e.Data[k], v)
		}
	}

	return ""
}

// NewCapturingLogger creates a logging hook and entry suitable for passing to
// functions and asserting on. The logger records debug entries.
func NewCapturingLogger() (*logrus_test.Hook, *logrus.Entry) {
	logger, h := logrus_test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return h, logrus.NewEntry(logger)
}

// AssertLoggingOutput compares the logs on `h` with the expected entries in
// `expected`. It returns a slice of errors encountered, with a zero length if
// no assertions failed.
func AssertLoggingOutput(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()
	errs := make([]error, 0, len(entries))

	if len(entries) != len(expected) {
		errs = append(errs, fmt.Errorf("Got %d logs, expected %d", len(entries), len(expected)))
		for i, e := range entries {
			errs = append(errs, errors.Errorf("log #%d - %s: %s", i, e.Level, e.Message))
		}
		return errs
	}

	for i, e := range entries {
		if errText := expected[i].assertMatches(*e); errText != "" {
			errs = append(errs, errors.Errorf("log #%d - %s", i, errText))
		}
	}
	return errs
}

// AssertContainsEntries checks that every expected entry appears in `h`, in
// order, allowing unrelated entries in between.
func AssertContainsEntries(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()
	i := 0
	for _, e := range entries {
		if i < len(expected) && expected[i].assertMatches(*e) == "" {
			i++
		}
	}
	if i < len(expected) {
		return []error{errors.Errorf("expected log entry #%d (%q%q) not found in order", i, expected[i].Message, expected[i].MessageRegex)}
	}
	return nil
}
