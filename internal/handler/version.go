package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo describes the running binary
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Stamped with -ldflags "-X .../handler.Version=..."; when unset, the VCS
// settings recorded by the Go toolchain fill BuildTime and GitCommit.
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

const devVersion = "dev"

// HandleVersion serves build information. A linked-in Version wins over the
// configured one.
func HandleVersion(serviceName, configured string) http.HandlerFunc {
	info := buildInfo(serviceName, configured)
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func buildInfo(serviceName, configured string) VersionInfo {
	info := VersionInfo{
		Service:   serviceName,
		Version:   resolveVersion(configured),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

func resolveVersion(configured string) string {
	switch {
	case Version != "" && Version != devVersion:
		return Version
	case configured != "":
		return configured
	}
	return devVersion
}
