// Package version reports the build identity of the sonic binary.
package version

import (
	"runtime/debug"
	"strings"
)

// Build metadata, set with -ldflags, e.g.
// -X github.com/sonicdash/sonic/internal/version.Version=vX.Y.Z
// -X github.com/sonicdash/sonic/internal/version.Commit=abc1234
// -X github.com/sonicdash/sonic/internal/version.BuildDate=2026-01-02T15:04:05Z
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Info describes one build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func Current() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// Get returns the build identity. A missing commit falls back to the VCS
// revision the Go toolchain stamped into the binary.
func Get() Info {
	info := Info{
		Version:   Current(),
		Commit:    strings.TrimSpace(Commit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
	if info.Commit == "" {
		info.Commit = vcsRevision()
	}
	return info
}

func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		b.WriteString(" (" + commit)
		if i.BuildDate != "" {
			b.WriteString(", built " + i.BuildDate)
		}
		b.WriteString(")")
	} else if i.BuildDate != "" {
		b.WriteString(" (built " + i.BuildDate + ")")
	}
	return b.String()
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
