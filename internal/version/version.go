// Package version reports the gnomefavs build version.
package version

import (
	"runtime/debug"
)

// Version can be set at build time:
// -ldflags="-X github.com/wethinkt/gnomefavs/internal/version.Version=v1.0.0"
var Version = ""

// Get returns Version, else the module version from build info, else a
// dev-<revision> string, else "dev".
func Get() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	if rev := revision(info); rev != "" {
		return "dev-" + rev
	}
	return "dev"
}

// revision returns the short VCS revision recorded by the go tool.
func revision(info *debug.BuildInfo) string {
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			if len(setting.Value) > 7 {
				return setting.Value[:7]
			}
			return setting.Value
		}
	}
	return ""
}
