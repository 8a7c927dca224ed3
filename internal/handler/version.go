package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo is served at /version and printed by `craftboard version`
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/craftboard/internal/handler.Version=..."
var (
	Version   = devVersion
	BuildTime = ""
	GitCommit = ""
)

const devVersion = "dev"

func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CurrentVersion())
	}
}

// CurrentVersion fills anything not injected at link time from $VERSION and
// the VCS stamp the go tool embeds in module builds.
func CurrentVersion() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.Version == "" || info.Version == devVersion {
		if env := os.Getenv("VERSION"); env != "" {
			info.Version = env
		} else {
			info.Version = devVersion
		}
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			}
		}
	}
	return info
}
