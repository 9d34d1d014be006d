package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "docsidebars.yaml"

// Config is the docsidebars configuration file.
type Config struct {
	Sidebars   []SidebarConfig  `yaml:"sidebars,omitempty"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`

	// Warnings collected while normalizing enum values.
	Warnings []string `yaml:"-"`
}

// SidebarConfig declares one sidebar.
type SidebarConfig struct {
	Key   string       `yaml:"key"`
	Items []ItemConfig `yaml:"items"`
}

// ItemConfig declares one item; exactly one field must be set.
type ItemConfig struct {
	Autogenerated string            `yaml:"autogenerated,omitempty"`
	Link          *sidebar.LinkSpec `yaml:"link,omitempty"`
}

// OutputConfig controls where generated sidebars are written.
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
	Path   string       `yaml:"path"`
}

// ValidationConfig feeds the validate command.
type ValidationConfig struct {
	ContentRoot    string `yaml:"content_root,omitempty"`
	StaticDir      string `yaml:"static_dir,omitempty"`
	CheckExternal  bool   `yaml:"check_external,omitempty"`
	RequestTimeout string `yaml:"request_timeout,omitempty"`
	MaxConcurrent  int    `yaml:"max_concurrent,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Default returns the configuration used when no file exists: the built-in
// registry written as JSON to sidebars.json.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads, expands and normalizes the configuration at path.
// Variables from .env and .env.local are loaded first without overriding the environment.
func Load(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.FileSystemError("failed to read config file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes YAML config data. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config").
			WithRetry(errors.RetryUserAction).
			Build()
	}
	normalize(&cfg)
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Path == "" {
		cfg.Output.Path = "sidebars." + string(cfg.Output.Format.orDefault())
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = formatFromPath(cfg.Output.Path)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	if cfg.Validation.RequestTimeout == "" {
		cfg.Validation.RequestTimeout = "10s"
	}
	if cfg.Validation.MaxConcurrent <= 0 {
		cfg.Validation.MaxConcurrent = 4
	}
}

// Validate checks structural constraints that defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Validation.RequestTimeout); err != nil {
		return errors.ConfigError("invalid validation.request_timeout").
			WithContext("value", c.Validation.RequestTimeout).
			Build()
	}
	for i, sb := range c.Sidebars {
		if strings.TrimSpace(sb.Key) == "" {
			return errors.ConfigError("sidebar key is empty").WithContext("index", i).Build()
		}
		for j, it := range sb.Items {
			if _, err := it.item(); err != nil {
				return errors.WrapError(err, errors.CategoryConfig, "invalid sidebar item").
					WithContext("sidebar", sb.Key).
					WithContext("item", j).
					Build()
			}
		}
	}
	_, err := c.Registry()
	return err
}

// RequestTimeout returns the parsed validation timeout.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Validation.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func (it ItemConfig) item() (sidebar.Item, error) {
	hasDir := strings.TrimSpace(it.Autogenerated) != ""
	hasLink := it.Link != nil
	switch {
	case hasDir && hasLink:
		return sidebar.Item{}, fmt.Errorf("item sets both autogenerated and link")
	case hasDir:
		return sidebar.Autogenerated(strings.TrimSpace(it.Autogenerated)), nil
	case hasLink:
		return sidebar.NewAPIClientLink(*it.Link), nil
	default:
		return sidebar.Item{}, fmt.Errorf("item sets neither autogenerated nor link")
	}
}

// Registry builds the sidebar registry. Without declared sidebars the
// built-in registry is returned.
func (c *Config) Registry() (*sidebar.Registry, error) {
	if len(c.Sidebars) == 0 {
		return sidebar.Default(), nil
	}
	sidebars := make([]sidebar.Sidebar, 0, len(c.Sidebars))
	for _, sc := range c.Sidebars {
		items := make([]sidebar.Item, 0, len(sc.Items))
		for _, ic := range sc.Items {
			it, err := ic.item()
			if err != nil {
				return nil, errors.WrapError(err, errors.CategoryConfig, "invalid sidebar item").
					WithContext("sidebar", sc.Key).
					Build()
			}
			items = append(items, it)
		}
		sidebars = append(sidebars, sidebar.Sidebar{Key: sc.Key, Items: items})
	}
	return sidebar.NewRegistry(sidebars...)
}

// SidebarsFromRegistry converts a registry back into config declarations.
func SidebarsFromRegistry(reg *sidebar.Registry) []SidebarConfig {
	out := make([]SidebarConfig, 0, reg.Len())
	for _, sb := range reg.Sidebars() {
		sc := SidebarConfig{Key: sb.Key}
		for _, it := range sb.Items {
			if it.IsLink() {
				link := *it.Link
				sc.Items = append(sc.Items, ItemConfig{Link: &link})
				continue
			}
			sc.Items = append(sc.Items, ItemConfig{Autogenerated: it.DirName})
		}
		out = append(out, sc)
	}
	return out
}
