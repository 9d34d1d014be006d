package config

import (
	"crypto/sha256"
	"encoding/hex"
)

// Snapshot hashes the fields that affect generated output: the sidebar
// declarations and the output target. Logging and validation settings are
// excluded so editing them does not trigger regeneration in watch mode.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}
	w("output.format", string(c.Output.Format))
	w("output.path", c.Output.Path)
	for _, sb := range c.Sidebars {
		w("sidebar", sb.Key)
		for _, it := range sb.Items {
			if it.Link != nil {
				w("link", it.Link.Name, it.Link.Href, it.Link.Icon)
				continue
			}
			w("autogenerated", it.Autogenerated)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
