package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"slices"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"

	"github.com/cloudbinding/provisioner/pkg/metrics"
)

const namespace = "provisioner"

// Registry records every emitted value as a gauge in a private registry. When
// a Pushgateway URL is configured, Close pushes the registry to it.
type Registry struct {
	log       *logrus.Entry
	registry  *prometheus.Registry
	pusherURL string
	job       string

	mu     sync.Mutex
	gauges map[string]*prometheus.GaugeVec
}

var _ metrics.Interface = &Registry{}

// New returns a Registry. pushgatewayURL may be empty.
func New(log *logrus.Entry, pushgatewayURL, job string) *Registry {
	return &Registry{
		log:       log,
		registry:  prometheus.NewRegistry(),
		pusherURL: pushgatewayURL,
		job:       job,
		gauges:    map[string]*prometheus.GaugeVec{},
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// MetricName converts a dotted stat name into a Prometheus metric name.
func MetricName(stat string) string {
	return namespace + "_" + strings.NewReplacer(".", "_", "-", "_", "/", "_").Replace(stat)
}

func (r *Registry) gauge(stat string, dims map[string]string) (prometheus.Gauge, error) {
	labels := make([]string, 0, len(dims))
	for k := range dims {
		labels = append(labels, k)
	}
	slices.Sort(labels)

	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.gauges[stat]
	if !ok {
		g = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricName(stat),
			Help: stat,
		}, labels)
		if err := r.registry.Register(g); err != nil {
			return nil, err
		}
		r.gauges[stat] = g
	}

	return g.GetMetricWith(prometheus.Labels(dims))
}

func (r *Registry) EmitFloat(stat string, value float64, dims map[string]string) {
	g, err := r.gauge(stat, dims)
	if err != nil {
		r.log.Warnf("metric %s: %v", stat, err)
		return
	}
	g.Set(value)
}

func (r *Registry) EmitGauge(stat string, value int64, dims map[string]string) {
	r.EmitFloat(stat, float64(value), dims)
}

// Close pushes collected metrics when a Pushgateway is configured.
func (r *Registry) Close() error {
	if r.pusherURL == "" {
		return nil
	}
	return push.New(r.pusherURL, r.job).Gatherer(r.registry).Push()
}
