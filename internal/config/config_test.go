package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docsidebars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "sidebars.json", cfg.Output.Path)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 4, cfg.Validation.MaxConcurrent)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"fluvio", "sdf", "apis"}, reg.Keys())
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "sidebars.json", cfg.Output.Path)
}

func TestLoadSidebars(t *testing.T) {
	path := writeConfig(t, `
sidebars:
  - key: guides
    items:
      - autogenerated: guides
  - key: apis
    items:
      - autogenerated: apis
      - link:
          name: Go SDK
          href: https://pkg.go.dev/example.com/sdk
          icon: /img/docs/sdk/go.svg
output:
  path: out/sidebars.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format, "format inferred from path extension")

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"guides", "apis"}, reg.Keys())

	items, ok := reg.Items("apis")
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsAutogenerated())
	require.True(t, items[1].IsLink())
	assert.Equal(t, "Go SDK", items[1].Link.Name)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCS_SDK_HOST", "https://sdk.example.com")
	path := writeConfig(t, `
sidebars:
  - key: apis
    items:
      - link: {name: SDK, href: "${DOCS_SDK_HOST}/ref", icon: /img/sdk.svg}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://sdk.example.com/ref", cfg.Sidebars[0].Items[0].Link.Href)
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCSIDEBARS_TEST_DIR=fromfile\nDOCSIDEBARS_TEST_KEEP=fromfile\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docsidebars.yaml"), []byte(`
sidebars:
  - key: ${DOCSIDEBARS_TEST_DIR}
    items: [{autogenerated: "${DOCSIDEBARS_TEST_KEEP}"}]
`), 0o600))
	t.Setenv("DOCSIDEBARS_TEST_KEEP", "fromenv")
	t.Cleanup(func() { _ = os.Unsetenv("DOCSIDEBARS_TEST_DIR") })

	cfg, err := Load(filepath.Join(dir, "docsidebars.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.Sidebars[0].Key)
	assert.Equal(t, "fromenv", cfg.Sidebars[0].Items[0].Autogenerated)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		category errors.ErrorCategory
	}{
		{"unknown field", "outptu: {}\n", errors.CategoryConfig},
		{"item with both kinds", "sidebars: [{key: a, items: [{autogenerated: a, link: {name: n, href: h, icon: i}}]}]\n", errors.CategoryConfig},
		{"empty item", "sidebars: [{key: a, items: [{}]}]\n", errors.CategoryConfig},
		{"empty key", "sidebars: [{key: '', items: []}]\n", errors.CategoryConfig},
		{"duplicate key", "sidebars: [{key: a, items: []}, {key: a, items: []}]\n", errors.CategoryAlreadyExists},
		{"bad timeout", "validation: {request_timeout: soon}\n", errors.CategoryConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, tt.category), "got %v", err)
		})
	}
}

func TestNormalizeEnums(t *testing.T) {
	cfg, err := Parse([]byte(`
output: {format: " TypeScript "}
logging: {level: WARN, format: xml}
validation: {max_concurrent: -3}
`))
	require.NoError(t, err)
	assert.Equal(t, FormatTS, cfg.Output.Format)
	assert.Equal(t, "sidebars.ts", cfg.Output.Path)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, 4, cfg.Validation.MaxConcurrent)
	assert.Len(t, cfg.Warnings, 4)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseOutputFormat("toml")
	require.Error(t, err)
	assert.Contains(t, OutputFormats(), "typescript")
}

func TestInitRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsidebars.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryAlreadyExists))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "docs", cfg.Validation.ContentRoot)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, sidebar.Default().Sidebars(), reg.Sidebars())
}

func TestSnapshot(t *testing.T) {
	a := Sample()
	b := Sample()
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	b.Logging.Level = LogLevelDebug
	assert.Equal(t, a.Snapshot(), b.Snapshot(), "logging does not affect output")

	b.Sidebars[2].Items[1].Link.Href = "https://docs.rs/fluvio/0.1.0/fluvio/"
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	var nilCfg *Config
	assert.Empty(t, nilCfg.Snapshot())
}

func TestSnapshotSeparatesFields(t *testing.T) {
	a := Default()
	a.Sidebars = []SidebarConfig{{Key: "apis", Items: []ItemConfig{{Link: &sidebar.LinkSpec{Name: "a=b", Href: "c", Icon: "/i.svg"}}}}}
	b := Default()
	b.Sidebars = []SidebarConfig{{Key: "apis", Items: []ItemConfig{{Link: &sidebar.LinkSpec{Name: "a", Href: "b=c", Icon: "/i.svg"}}}}}
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())
}

func TestAutogeneratedDirIsTrimmed(t *testing.T) {
	cfg, err := Parse([]byte(`
sidebars:
  - key: apis
    items: [{autogenerated: "  apis "}]
`))
	require.NoError(t, err)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	items, ok := reg.Items("apis")
	require.True(t, ok)
	assert.Equal(t, "apis", items[0].DirName)
}

func TestLoggingConfig(t *testing.T) {
	l := LoggingConfig{Level: LogLevelError, Format: LogFormatJSON}
	assert.Equal(t, "ERROR", l.SlogLevel(false).String())
	assert.Equal(t, "DEBUG", l.SlogLevel(true).String())
	assert.NotNil(t, l.NewLogger(os.Stderr, false))
}
