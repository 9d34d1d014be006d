package version

import "fmt"

// Build metadata, set with ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/docsidebars/internal/version.Version=v0.3.0".
var (
	Version   = "unknown"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("docsidebars %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
