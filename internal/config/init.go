package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/sidebar"
)

// Sample returns a config that spells out the built-in registry.
func Sample() *Config {
	cfg := Default()
	cfg.Sidebars = SidebarsFromRegistry(sidebar.Default())
	cfg.Validation.ContentRoot = "docs"
	cfg.Validation.StaticDir = "static"
	return cfg
}

// Init writes Sample to path. An existing file is kept unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewError(errors.CategoryAlreadyExists, "configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	data, err := yaml.Marshal(Sample())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write config file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
