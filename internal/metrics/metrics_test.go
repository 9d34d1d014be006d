package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncCheckResult("href", ResultPass)
	r.ObserveLinkCheckDuration("docs.rs", time.Second, true)
	r.ObserveRunDuration(time.Second)
	r.SetIssues("error", 1)
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncCheckResult("href", ResultPass)
	pr.IncCheckResult("href", ResultPass)
	pr.IncCheckResult("icon", ResultFail)
	pr.ObserveLinkCheckDuration("docs.rs", 150*time.Millisecond, true)
	pr.ObserveRunDuration(time.Second)
	pr.SetIssues("error", 3)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 4)

	path := filepath.Join(t.TempDir(), "recorder.prom")
	require.NoError(t, WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `docsidebars_check_results_total{check="href",result="pass"} 2`)
	assert.Contains(t, out, `docsidebars_check_results_total{check="icon",result="fail"} 1`)
	assert.Contains(t, out, `docsidebars_validation_issues{severity="error"} 3`)
	assert.Contains(t, out, `docsidebars_external_link_check_duration_seconds_count{host="docs.rs",result="reachable"} 1`)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncCheckResult("href", ResultPass)
	pr.SetIssues("error", 1)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.SetIssues("warning", 2)

	path := filepath.Join(t.TempDir(), "docsidebars.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `docsidebars_validation_issues{severity="warning"} 2`))
}

func TestWriteTextfileBadPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), prom.NewRegistry())
	require.Error(t, err)
}
