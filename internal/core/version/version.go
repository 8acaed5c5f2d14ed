// Package version reports what build of the service is running
package version

import (
	"runtime/debug"
	"sync"
)

// ServiceName identifies this binary in health and version payloads
const ServiceName = "statcard-api"

// set with -ldflags "-X statcard/internal/core/version.version=v1.2.3 ..."
var (
	version = ""
	commit  = ""
	date    = ""
)

// BuildInfo is the version payload
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var (
	infoOnce sync.Once
	info     BuildInfo
	readInfo = debug.ReadBuildInfo
)

// Info returns linker supplied values, falling back to the module version and vcs stamps
func Info() BuildInfo {
	infoOnce.Do(func() { info = resolve() })
	return info
}

func resolve() BuildInfo {
	out := BuildInfo{Service: ServiceName, Version: version, Commit: commit, Date: date}
	if bi, ok := readInfo(); ok {
		if out.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			out.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && out.Commit == "":
				out.Commit = s.Value
			case s.Key == "vcs.time" && out.Date == "":
				out.Date = s.Value
			}
		}
	}
	if out.Version == "" {
		out.Version = "dev"
	}
	if out.Commit == "" {
		out.Commit = "none"
	}
	if out.Date == "" {
		out.Date = "unknown"
	}
	return out
}
