package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	cause := stderrors.New("boom")
	err := WrapError(cause, CategoryNetwork, "HEAD failed").
		WithRetry(RetryBackoff).
		WithContext("href", "https://docs.rs/fluvio/latest/fluvio/").
		Build()

	assert.Equal(t, CategoryNetwork, err.Category())
	assert.Equal(t, SeverityError, err.Severity())
	assert.True(t, err.CanRetry())
	assert.False(t, err.IsFatal())
	assert.ErrorIs(t, err, cause)

	href, ok := err.Context().GetString("href")
	require.True(t, ok)
	assert.Equal(t, "https://docs.rs/fluvio/latest/fluvio/", href)
	assert.Equal(t, "[network:error] HEAD failed: boom", err.Error())
}

func TestHelpersWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")

	net := NetworkError("request failed").WithCause(cause).Build()
	assert.Equal(t, CategoryNetwork, net.Category())
	assert.Equal(t, RetryBackoff, net.RetryStrategy())
	assert.ErrorIs(t, net, cause)
	assert.Equal(t, "[network:error] request failed: connection refused", net.Error())

	fs := FileSystemError("failed to write output").WithCause(cause).Build()
	assert.Equal(t, CategoryFileSystem, fs.Category())
	assert.Same(t, cause, fs.Cause())

	render := RenderError("failed to encode YAML").WithCause(cause).Build()
	assert.True(t, render.IsFatal())
	assert.Equal(t, CategoryRender, render.Category())
}

func TestBuilderReuseDoesNotShareContext(t *testing.T) {
	b := ValidationError("bad link").WithContext("sidebar", "apis")
	first := b.Build()
	b.WithContext("index", 2)
	second := b.Build()

	_, hasIndex := first.Context().Get("index")
	assert.False(t, hasIndex)
	_, hasIndex = second.Context().Get("index")
	assert.True(t, hasIndex)
}

func TestDetailSortsContext(t *testing.T) {
	err := NewError(CategoryAlreadyExists, "duplicate sidebar key").
		WithContext("sidebar", "apis").
		WithContext("index", 3).
		Build()
	assert.Equal(t, "duplicate sidebar key (index=3, sidebar=apis)", err.Detail())
}

func TestAsClassifiedFollowsWrapping(t *testing.T) {
	inner := ConfigError("missing file").Build()
	wrapped := fmt.Errorf("load: %w", inner)

	ce, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, ce)
	assert.True(t, HasCategory(wrapped, CategoryConfig))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
	assert.ErrorIs(t, wrapped, ConfigError("missing file").Build())
}

func TestCLIErrorAdapterExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, slog.Default())
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"unclassified", stderrors.New("x"), 1},
		{"validation", ValidationError("x").Build(), 2},
		{"not found", NotFoundError("x").Build(), 3},
		{"config", ConfigError("x").Build(), 7},
		{"duplicate", NewError(CategoryAlreadyExists, "x").Build(), 7},
		{"network", NetworkError("x").Build(), 8},
		{"internal", InternalError("x").Build(), 10},
		{"filesystem", FileSystemError("x").Build(), 11},
		{"render", RenderError("x").Build(), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapterHandleError(t *testing.T) {
	var logs, stderr bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.stderr = &stderr
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(ValidationError("icon asset not found").WithContext("icon", "/img/x.svg").Build())

	assert.Equal(t, 2, code)
	assert.Equal(t, "Error: icon asset not found (icon=/img/x.svg)\n", stderr.String())
	assert.Contains(t, logs.String(), "category=validation")

	code = -1
	a.HandleError(nil)
	assert.Equal(t, -1, code)
}

func TestCLIErrorAdapterHidesInternalDetails(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)
	msg := a.FormatError(InternalError("nil registry").Build())
	assert.Equal(t, "Internal error occurred (use -v for details)", msg)

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Equal(t, "Error: [internal:fatal] nil registry", verbose.FormatError(InternalError("nil registry").Build()))
}
