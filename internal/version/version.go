package version

import (
	"fmt"
	"runtime"
)

// AppName is the application name reported by /info.
const AppName = "my-app"

// Version is the application version reported by /info and the home page.
// It does not follow BuildVersion.
const Version = "1.0.0"

// Build metadata, overridable at link time:
//
//	go build -ldflags "-X github.com/redhat-appstudio/my-app/internal/version.BuildCommit=$(git rev-parse --short HEAD)"
var (
	BuildVersion = "v1.0.0"
	BuildTime    = "unknown"
	BuildCommit  = "unknown"
)

// GetVersion returns the version string with its "v" prefix.
func GetVersion() string {
	return BuildVersion
}

// GetBuildInfo returns version, build time, commit and Go runtime in one line.
func GetBuildInfo() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, go: %s)",
		BuildVersion, BuildTime, BuildCommit, runtime.Version())
}
