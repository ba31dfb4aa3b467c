// Package metrics records scheduling runs.
//
// PromRecorder exposes Prometheus collectors on a caller-supplied registry.
// One-shot CLI runs have no scrape endpoint, so WriteTextfile dumps a
// registry in the node_exporter textfile format instead.
package metrics
