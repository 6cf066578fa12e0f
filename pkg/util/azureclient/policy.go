package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"
)

const (
	responseCode         = "response_status_code"
	durationMilliseconds = "duration_milliseconds"
	correlationIdHeader  = "X-Ms-Correlation-Request-Id"
)

type PolicyFunc func(req *policy.Request) (*http.Response, error)

func (p PolicyFunc) Do(req *policy.Request) (*http.Response, error) {
	return p(req)
}

var _ policy.Policy = PolicyFunc(nil)

// NewLoggingPolicy logs the start and end of every outgoing request.
func NewLoggingPolicy(log *logrus.Entry) policy.Policy {
	return PolicyFunc(func(req *policy.Request) (*http.Response, error) {
		raw := req.Raw()
		requestTime := time.Now()
		l := log.WithFields(logrus.Fields{
			"request_method": raw.Method,
			"request_URL":    raw.URL.Host + raw.URL.Path,
		})

		l.Debug("HttpRequestStart")

		res, err := req.Next()
		if res == nil {
			l.WithFields(logrus.Fields{
				responseCode:         "0",
				durationMilliseconds: time.Since(requestTime).Milliseconds(),
			}).Debug("HttpRequestEnd")
			return res, err
		}

		l.WithFields(logrus.Fields{
			responseCode:         res.StatusCode,
			"correlation_id":     res.Header.Get(correlationIdHeader),
			durationMilliseconds: time.Since(requestTime).Milliseconds(),
		}).Debug("HttpRequestEnd")

		return res, err
	})
}
