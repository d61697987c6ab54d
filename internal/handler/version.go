package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// buildVersion is the module version stamped by the toolchain, if any
func buildVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return ""
}

// NewVersionInfo describes the running binary. The configured version wins
// unless it is the development default and the toolchain stamped a module version.
func NewVersionInfo(serviceName, version string) VersionInfo {
	vi := VersionInfo{
		Service:   serviceName,
		Version:   version,
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vi
	}
	if (vi.Version == "" || vi.Version == DefaultVersion) && buildVersion(info) != "" {
		vi.Version = buildVersion(info)
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			vi.Revision = s.Value
		case "vcs.time":
			vi.BuildTime = s.Value
		case "vcs.modified":
			vi.Modified = s.Value == "true"
		}
	}
	return vi
}

// HandleVersion returns version information about the running service
func HandleVersion(serviceName, version string) http.HandlerFunc {
	vi := NewVersionInfo(serviceName, version)
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, vi)
	}
}
