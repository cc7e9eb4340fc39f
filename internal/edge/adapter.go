// Package edge implements the public-facing brand filter in front of the item catalog.
package edge

import (
	"context"
	"time"

	"github.com/mdouchement/topbrands/pkg/libcatalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// An Adapter serves the catalog items minus the Blocklist.
type Adapter struct {
	client  libcatalog.Client
	log     logrus.FieldLogger
	metrics *Metrics
	timeout time.Duration
}

// NewAdapter returns a new Adapter.
// A zero timeout leaves the catalog call bounded only by the caller's context.
func NewAdapter(client libcatalog.Client, log logrus.FieldLogger, metrics *Metrics, timeout time.Duration) *Adapter {
	return &Adapter{
		client:  client,
		log:     log,
		metrics: metrics,
		timeout: timeout,
	}
}

// GoodItems returns the catalog items that are not blocklisted.
// It never fails: when the catalog call fails, an empty list is returned.
func (a *Adapter) GoodItems(ctx context.Context) []libcatalog.Item {
	a.log.Info("goodItems")

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	timer := prometheus.NewTimer(a.metrics.latency)
	result := Fetch(ctx, a.client)
	timer.ObserveDuration()

	if result.Failed() {
		a.metrics.calls.WithLabelValues(outcomeFallback).Inc()
		a.log.WithError(result.Err).Warn("catalog call failed, falling back to an empty list")
		return []libcatalog.Item{}
	}
	a.metrics.calls.WithLabelValues(outcomeSuccess).Inc()

	items := Filter(result.Items)
	a.metrics.filtered.Add(float64(len(result.Items) - len(items)))
	return items
}
