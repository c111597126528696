// Package version reports the build version of mkprefix.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	BuildDate string // Set via ldflags.

	Revision  = getRevision(readBuildInfo)
	GoVersion = runtime.Version()
)

// GetVersion returns the ldflags version, or the VCS revision when unset.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// String returns a single line suitable for --version output.
func String() string {
	s := fmt.Sprintf("%s (%s, %s/%s)", GetVersion(), GoVersion, runtime.GOOS, runtime.GOARCH)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func getRevision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			if len(v.Value) > 7 {
				rev = v.Value[:7]
			} else {
				rev = v.Value
			}

		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
