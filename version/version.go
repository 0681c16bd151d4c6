// Package version reports what the running ontos binary was built from.
// Release builds stamp the variables below with ldflags, for example:
//
//	go build -ldflags "-X github.com/PavelShpagin/ontos/version.Version=v0.3.0 \
//	  -X github.com/PavelShpagin/ontos/version.CommitHash=$(git rev-parse HEAD) \
//	  -X github.com/PavelShpagin/ontos/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// An unstamped binary identifies itself as a dev build.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// CommitHash identifies the git commit the binary was built from.
	CommitHash = "dev"

	// BuildTime records when the binary was built, UTC.
	BuildTime = "unknown"
)

// Info is a snapshot of build and runtime metadata, serializable for
// the version command's --json output.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get collects the stamped build variables together with the runtime
// Go version and platform.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the info as a single human-readable line.
func (i Info) String() string {
	return fmt.Sprintf("ontos %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short abbreviates the commit hash to the usual seven characters.
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
