package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsidebars"

// PrometheusRecorder implements Recorder with Prometheus collectors.
type PrometheusRecorder struct {
	checkResults *prom.CounterVec
	linkDuration *prom.HistogramVec
	runDuration  prom.Histogram
	issues       *prom.GaugeVec
}

// NewPrometheusRecorder creates the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		checkResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "check_results_total",
			Help:      "Validation check results by check and outcome",
		}, []string{"check", "result"}),
		linkDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "external_link_check_duration_seconds",
			Help:      "Duration of external link reachability checks",
			Buckets:   prom.DefBuckets,
		}, []string{"host", "result"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Total validation run duration",
			Buckets:   prom.DefBuckets,
		}),
		issues: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_issues",
			Help:      "Issues found by the last validation run by severity",
		}, []string{"severity"}),
	}
	reg.MustRegister(pr.checkResults, pr.linkDuration, pr.runDuration, pr.issues)
	return pr
}

func (p *PrometheusRecorder) IncCheckResult(check string, result ResultLabel) {
	if p == nil {
		return
	}
	p.checkResults.WithLabelValues(check, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveLinkCheckDuration(host string, d time.Duration, reachable bool) {
	if p == nil {
		return
	}
	res := "unreachable"
	if reachable {
		res = "reachable"
	}
	p.linkDuration.WithLabelValues(host, res).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetIssues(severity string, n int) {
	if p == nil {
		return
	}
	p.issues.WithLabelValues(severity).Set(float64(n))
}
