// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smart_pocket"

var (
	// ReceiptsParsed counts parse requests by outcome ("reconciled" or "fallback").
	ReceiptsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "receipts_parsed_total",
		Help:      "Receipts run through extraction and reconciliation.",
	}, []string{"outcome"})

	// ReceiptsSubmitted counts receipt submissions by shape ("single" or "split") and outcome.
	ReceiptsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "receipts_submitted_total",
		Help:      "Receipts decomposed and written to the ledger.",
	}, []string{"shape", "outcome"})

	// UnresolvedKeys counts LLM keys that matched no ledger entity, by kind.
	UnresolvedKeys = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unresolved_keys_total",
		Help:      "Extracted keys left unresolved during reconciliation.",
	}, []string{"kind"})

	// UpstreamRetries counts 503 retries issued by the HTTP client, by upstream service.
	UpstreamRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_retries_total",
		Help:      "Requests retried after an upstream 503.",
	}, []string{"service"})

	// UpstreamRequests counts completed upstream HTTP calls by service and status code.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Upstream HTTP calls by final status code.",
	}, []string{"service", "code"})

	// HTTPRequestDuration observes handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of inbound HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
