package config

// normalize canonicalizes enum fields in place, recording a warning for
// every value that was rewritten or replaced by its default.
func normalize(cfg *Config) {
	if cfg.Output.Format != "" {
		v, warn := outputFormats.NormalizeWithWarning(string(cfg.Output.Format))
		cfg.Output.Format = v
		cfg.warn(warn)
	}
	if cfg.Logging.Level != "" {
		v, warn := logLevels.NormalizeWithWarning(string(cfg.Logging.Level))
		cfg.Logging.Level = v
		cfg.warn(warn)
	}
	if cfg.Logging.Format != "" {
		v, warn := logFormats.NormalizeWithWarning(string(cfg.Logging.Format))
		cfg.Logging.Format = v
		cfg.warn(warn)
	}
	if cfg.Validation.MaxConcurrent < 0 {
		cfg.Validation.MaxConcurrent = 0
		cfg.warn("negative validation.max_concurrent clamped to default")
	}
}

func (c *Config) warn(msg string) {
	if msg != "" {
		c.Warnings = append(c.Warnings, msg)
	}
}
