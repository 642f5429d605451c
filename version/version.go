package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags, e.g.
// -X github.com/LivedOma/JsonPlaceholderAnalyzer/version.Version=1.2.0
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Dirty     bool   `json:"dirty"`
}

// Get resolves the build identity. Fields not injected at build time
// fall back to the module build info stamped by the Go toolchain.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" && s.Value != "" {
				rev := s.Value
				if len(rev) > 7 {
					rev = rev[:7]
				}
				info.Commit = rev
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Short returns a compact identity like "1.2.0-abc1234".
func Short() string {
	info := Get()
	s := info.Version
	if info.Commit != "" {
		s += "-" + info.Commit
	}
	if info.Dirty {
		s += "-dirty"
	}
	return s
}

// String formats the full identity for display.
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Version)
	if i.Commit != "" {
		b.WriteString("-" + i.Commit)
	}
	if i.Dirty {
		b.WriteString("-dirty")
	}
	if i.BuildTime != "" {
		fmt.Fprintf(&b, " (built %s)", i.BuildTime)
	}
	if i.GoVersion != "" {
		b.WriteString(" " + i.GoVersion)
	}
	return b.String()
}
