package validate

import (
	"fmt"
	"io"
	"time"

	json "github.com/json-iterator/go"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
)

// Severity of a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Check    string   `json:"check"`
	Sidebar  string   `json:"sidebar"`
	Item     int      `json:"item"`
	Target   string   `json:"target,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s: %s[%d] %s: %s", i.Severity, i.Sidebar, i.Item, i.Check, i.Message)
	if i.Target != "" {
		s += " (" + i.Target + ")"
	}
	return s
}

// Report collects the findings of one run, in declaration order.
type Report struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration_ns"`
	Checked  int           `json:"items_checked"`
	Issues   []Issue       `json:"issues"`
}

func (r *Report) add(i Issue) { r.Issues = append(r.Issues, i) }

func (r *Report) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// Errors returns issues of error severity.
func (r *Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns issues of warning severity.
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarning) }

// HasErrors reports whether any issue has error severity.
func (r *Report) HasErrors() bool { return len(r.Errors()) > 0 }

// Err summarises the report as a validation error, or nil when there are no errors.
func (r *Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	return errors.ValidationError("sidebar validation failed").
		WithContext("errors", len(errs)).
		WithContext("first", errs[0].String()).
		WithContext("run_id", r.RunID).
		Build()
}

// WriteText writes one line per issue followed by a summary.
func (r *Report) WriteText(w io.Writer) error {
	for _, i := range r.Issues {
		if _, err := fmt.Fprintln(w, i.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d items checked, %d errors, %d warnings\n",
		r.Checked, len(r.Errors()), len(r.Warnings()))
	return err
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.ConfigCompatibleWithStandardLibrary.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.RenderError("failed to encode report").WithCause(err).Build()
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
