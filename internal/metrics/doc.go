// Package metrics records validation outcomes.
//
// Components take a Recorder and default to NoopRecorder, so metrics are
// optional everywhere:
//
//	v := validate.New(opts).WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The CLI is a one-shot process, so instead of serving /metrics it writes the
// registry to a node-exporter textfile with WriteTextfile.
package metrics
