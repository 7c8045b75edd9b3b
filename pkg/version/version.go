// Package version provides version information for the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the semantic version of the build, set via ldflags on release
// builds.
var Version = "dev"

// Revision is the VCS revision the binary was built from.
var Revision = func() string {
	revision := "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return revision
	}

	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		revision += "-dirty"
	}

	return revision
}()

// GetVersionString returns the version and revision in a single string.
func GetVersionString() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
