// Package validate performs opt-in, fail-fast checks of a sidebar registry:
// link fields and URLs, icon assets, content directories, rendered markup and,
// when enabled, reachability of external links.
//
// Nothing in sidebar or render calls into this package; declarations stay
// total and validation is an explicit step of the CLI.
package validate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/logfields"
	"git.home.luguber.info/inful/docsidebars/internal/metrics"
	"git.home.luguber.info/inful/docsidebars/internal/render"
	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

// Check names used in issues and metrics.
const (
	CheckLinkFields    = "link_fields"
	CheckLinkHref      = "link_href"
	CheckLinkIcon      = "link_icon"
	CheckLinkMarkup    = "link_markup"
	CheckLinkReachable = "link_reachable"
	CheckContentDir    = "content_dir"
)

// Options configures a Validator. Empty ContentRoot or StaticDir disables the
// corresponding filesystem check.
type Options struct {
	ContentRoot    string
	StaticDir      string
	CheckExternal  bool
	RequestTimeout time.Duration
	MaxConcurrent  int
	UserAgent      string
}

// Validator runs checks against a registry.
type Validator struct {
	opts     Options
	client   *http.Client
	recorder metrics.Recorder
	logger   *slog.Logger
}

// New creates a Validator with defaults applied to opts.
func New(opts Options) *Validator {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 4
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "docsidebars-linkcheck"
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Validator{
		opts:     opts,
		client:   &http.Client{Timeout: opts.RequestTimeout, Transport: transport},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithRecorder sets the metrics recorder.
func (v *Validator) WithRecorder(r metrics.Recorder) *Validator {
	if r != nil {
		v.recorder = r
	}
	return v
}

// WithHTTPClient replaces the client used for reachability checks.
func (v *Validator) WithHTTPClient(c *http.Client) *Validator {
	if c != nil {
		v.client = c
	}
	return v
}

// WithLogger sets the logger.
func (v *Validator) WithLogger(l *slog.Logger) *Validator {
	if l != nil {
		v.logger = l
	}
	return v
}

type linkRef struct {
	sidebar string
	index   int
	spec    sidebar.LinkSpec
}

// Run validates reg. The returned error is non-nil only when the run itself
// could not complete (for example on cancellation); findings go in the Report.
func (v *Validator) Run(ctx context.Context, reg *sidebar.Registry) (*Report, error) {
	if reg == nil {
		return nil, errors.InternalError("nil registry").Build()
	}
	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Started: start}
	log := v.logger.With(logfields.RunID(rep.RunID))
	log.Info("Starting sidebar validation", "sidebars", reg.Len())

	var external []linkRef
	for _, sb := range reg.Sidebars() {
		for i, it := range sb.Items {
			rep.Checked++
			switch {
			case it.IsLink():
				if v.checkLink(log, rep, sb.Key, i, *it.Link) && v.opts.CheckExternal {
					external = append(external, linkRef{sidebar: sb.Key, index: i, spec: *it.Link})
				}
			case it.IsAutogenerated():
				v.checkContentDir(log, rep, sb.Key, i, it.DirName)
			default:
				rep.add(Issue{
					Severity: SeverityError, Check: CheckLinkFields, Sidebar: sb.Key, Item: i,
					Message: fmt.Sprintf("unknown item type %q", it.Type),
				})
			}
		}
	}

	if len(external) > 0 {
		if err := v.checkReachable(ctx, log, rep, external); err != nil {
			return nil, err
		}
	}

	rep.Duration = time.Since(start)
	v.recorder.ObserveRunDuration(rep.Duration)
	v.recorder.SetIssues(string(SeverityError), len(rep.Errors()))
	v.recorder.SetIssues(string(SeverityWarning), len(rep.Warnings()))
	log.Info("Sidebar validation completed",
		"items", rep.Checked,
		"errors", len(rep.Errors()),
		"warnings", len(rep.Warnings()),
		logfields.DurationMS(float64(rep.Duration.Milliseconds())))
	return rep, nil
}

// checkLink runs the static link checks and reports whether the href is
// usable for a reachability probe.
func (v *Validator) checkLink(log *slog.Logger, rep *Report, key string, idx int, spec sidebar.LinkSpec) bool {
	log = log.With(logfields.Sidebar(key), logfields.Item(idx), logfields.Icon(spec.Icon))
	issue := func(check, target, msg string) {
		rep.add(Issue{Severity: SeverityError, Check: check, Sidebar: key, Item: idx, Target: target, Message: msg})
		v.recorder.IncCheckResult(check, metrics.ResultFail)
		log.Debug("Link check failed", "check", check, "detail", msg)
	}

	var missing []string
	if strings.TrimSpace(spec.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(spec.Href) == "" {
		missing = append(missing, "href")
	}
	if strings.TrimSpace(spec.Icon) == "" {
		missing = append(missing, "icon")
	}
	if len(missing) > 0 {
		issue(CheckLinkFields, spec.Name, "empty "+strings.Join(missing, ", "))
		return false
	}
	v.recorder.IncCheckResult(CheckLinkFields, metrics.ResultPass)

	hrefOK := true
	if err := checkAbsoluteURL(spec.Href); err != nil {
		issue(CheckLinkHref, spec.Href, err.Error())
		hrefOK = false
	} else {
		v.recorder.IncCheckResult(CheckLinkHref, metrics.ResultPass)
	}

	switch {
	case v.opts.StaticDir == "":
		v.recorder.IncCheckResult(CheckLinkIcon, metrics.ResultSkipped)
	case isRemote(spec.Icon):
		v.recorder.IncCheckResult(CheckLinkIcon, metrics.ResultSkipped)
	default:
		path := filepath.Join(v.opts.StaticDir, filepath.FromSlash(strings.TrimPrefix(spec.Icon, "/")))
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			issue(CheckLinkIcon, spec.Icon, "icon asset not found at "+path)
		} else {
			v.recorder.IncCheckResult(CheckLinkIcon, metrics.ResultPass)
		}
	}

	if problems := MarkupProblems(spec, render.LinkHTML(spec)); len(problems) > 0 {
		issue(CheckLinkMarkup, spec.Name, strings.Join(problems, "; "))
	} else {
		v.recorder.IncCheckResult(CheckLinkMarkup, metrics.ResultPass)
	}
	return hrefOK
}

func (v *Validator) checkContentDir(log *slog.Logger, rep *Report, key string, idx int, dir string) {
	log = log.With(logfields.Sidebar(key), logfields.Item(idx), logfields.Dir(dir))
	if strings.TrimSpace(dir) == "" {
		rep.add(Issue{Severity: SeverityError, Check: CheckContentDir, Sidebar: key, Item: idx, Message: "empty content directory name"})
		v.recorder.IncCheckResult(CheckContentDir, metrics.ResultFail)
		return
	}
	if v.opts.ContentRoot == "" {
		v.recorder.IncCheckResult(CheckContentDir, metrics.ResultSkipped)
		return
	}
	path := filepath.Join(v.opts.ContentRoot, dir)
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		rep.add(Issue{
			Severity: SeverityError, Check: CheckContentDir, Sidebar: key, Item: idx, Target: dir,
			Message: "content directory not found at " + path,
		})
		v.recorder.IncCheckResult(CheckContentDir, metrics.ResultFail)
		log.Debug("Content directory missing", logfields.Path(path))
		return
	}
	v.recorder.IncCheckResult(CheckContentDir, metrics.ResultPass)
	log.Debug("Content directory found", logfields.Path(path))
}

func checkAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q is not an absolute http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//")
}

// checkReachable probes external hrefs with bounded concurrency. Issues are
// appended in declaration order regardless of completion order.
func (v *Validator) checkReachable(ctx context.Context, log *slog.Logger, rep *Report, links []linkRef) error {
	results := make([]*Issue, len(links))
	sem := make(chan struct{}, v.opts.MaxConcurrent)
	var wg sync.WaitGroup

	for i, l := range links {
		select {
		case <-ctx.Done():
			wg.Wait()
			return errors.WrapError(ctx.Err(), errors.CategoryRuntime, "link verification canceled").Build()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, l linkRef) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = v.probe(ctx, log, l)
		}(i, l)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "link verification canceled").Build()
	}
	for _, is := range results {
		if is != nil {
			rep.add(*is)
		}
	}
	return nil
}

func (v *Validator) probe(ctx context.Context, log *slog.Logger, l linkRef) *Issue {
	u, _ := url.Parse(l.spec.Href)
	start := time.Now()
	status, err := v.fetchStatus(ctx, l.spec.Href)
	elapsed := time.Since(start)
	reachable := err == nil && status < 400
	v.recorder.ObserveLinkCheckDuration(u.Host, elapsed, reachable)

	attrs := []any{logfields.Sidebar(l.sidebar), logfields.Href(l.spec.Href), logfields.DurationMS(float64(elapsed.Milliseconds()))}
	switch {
	case err != nil:
		log.Warn("External link unreachable", append(attrs, logfields.Error(err))...)
		v.recorder.IncCheckResult(CheckLinkReachable, metrics.ResultWarning)
		return &Issue{
			Severity: SeverityWarning, Check: CheckLinkReachable, Sidebar: l.sidebar, Item: l.index,
			Target: l.spec.Href, Message: err.Error(),
		}
	case status >= 400:
		log.Warn("External link returned error status", append(attrs, logfields.Status(status))...)
		sev := SeverityError
		if status == http.StatusTooManyRequests || status >= 500 {
			sev = SeverityWarning
		}
		res := metrics.ResultFail
		if sev == SeverityWarning {
			res = metrics.ResultWarning
		}
		v.recorder.IncCheckResult(CheckLinkReachable, res)
		return &Issue{
			Severity: sev, Check: CheckLinkReachable, Sidebar: l.sidebar, Item: l.index,
			Target: l.spec.Href, Message: fmt.Sprintf("HTTP %d", status),
		}
	default:
		log.Debug("External link reachable", append(attrs, logfields.Status(status))...)
		v.recorder.IncCheckResult(CheckLinkReachable, metrics.ResultPass)
		return nil
	}
}

// fetchStatus issues a HEAD request, falling back to GET for servers that
// reject HEAD.
func (v *Validator) fetchStatus(ctx context.Context, href string) (int, error) {
	status, err := v.do(ctx, http.MethodHead, href)
	if err != nil {
		return 0, err
	}
	if status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented {
		return v.do(ctx, http.MethodGet, href)
	}
	return status, nil
}

func (v *Validator) do(ctx context.Context, method, href string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, href, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", v.opts.UserAgent)
	resp, err := v.client.Do(req)
	if err != nil {
		return 0, errors.NetworkError("request failed").
			WithCause(err).
			WithContext("href", href).
			Build()
	}
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}
