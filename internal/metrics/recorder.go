package metrics

import "time"

// ResultLabel enumerates check outcomes for counters.
type ResultLabel string

const (
	ResultPass    ResultLabel = "pass"
	ResultWarning ResultLabel = "warning"
	ResultFail    ResultLabel = "fail"
	ResultSkipped ResultLabel = "skipped"
)

// Recorder receives observations from validation runs.
type Recorder interface {
	IncCheckResult(check string, result ResultLabel)
	ObserveLinkCheckDuration(host string, d time.Duration, reachable bool)
	ObserveRunDuration(d time.Duration)
	SetIssues(severity string, n int)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) IncCheckResult(string, ResultLabel)                   {}
func (NoopRecorder) ObserveLinkCheckDuration(string, time.Duration, bool) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)                     {}
func (NoopRecorder) SetIssues(string, int)                                {}
