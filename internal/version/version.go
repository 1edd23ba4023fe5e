// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.1.0"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String returns the version and commit as one line.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
