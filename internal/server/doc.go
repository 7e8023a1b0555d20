// Package server exposes the calculator over HTTP.
//
// Endpoints:
//
//	GET /calc?op=mul&a=123&b=456[&backend=fft]  run one operation
//	GET /backends                              list registered backends
//	GET /health                                liveness probe
//	GET /metrics                               Prometheus metrics
//
// Every response is JSON except /metrics. Operations run through the same
// orchestration as the CLI, so backend "all" cross-checks every backend.
package server
