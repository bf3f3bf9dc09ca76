// Package version carries the build identity of the uigen binary.
package version

import (
	"fmt"
	"strings"
)

// Version, CommitSHA, and BuildDate are set via ldflags at build time.
// Example: go build -ldflags "-X .../version.Version=0.2.0 -X .../version.CommitSHA=abc1234 -X .../version.BuildDate=2026-10-01"
var (
	Version   = "0.1.0"
	CommitSHA = "dev"
	BuildDate = "unknown"
)

// Info returns a human-readable version string.
// For dev builds: "0.1.0"
// For release builds: "0.1.0 (abc1234, 2026-10-01)"
func Info() string {
	v := strings.TrimPrefix(Version, "v")
	if CommitSHA == "dev" || CommitSHA == "" {
		return v
	}
	return fmt.Sprintf("%s (%s, %s)", v, CommitSHA, BuildDate)
}

// Fingerprint identifies the generator build for cache keys. Dev builds
// all share one fingerprint per version.
func Fingerprint() string {
	v := strings.TrimPrefix(Version, "v")
	if CommitSHA == "" {
		return v
	}
	return v + "+" + CommitSHA
}
