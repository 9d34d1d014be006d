package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
)

// WriteTextfile writes everything gathered from g to path in the Prometheus
// text format, replacing the file atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return errors.FileSystemError("failed to write metrics textfile").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
