// Package version holds build-time version metadata, injected via
// -ldflags at build time. Zero values are reasonable "unknown" defaults
// for a go run / go test invocation.
package version

var (
	// GitRelease is the tagged release version, e.g. "v0.4.0".
	GitRelease = "dev"
	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"
	// GitCommitDate is the commit date of the build.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain version used to build the binary.
	GoInfo = "unknown"
)
