// Package version reports the build identity of the rounds binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X github.com/example/rounds/internal/version.Commit=...".
// Values left empty are filled from the VCS stamp the Go toolchain embeds in the binary.
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool
}

// Get resolves the build identity from ldflags first and embedded build info second.
func Get() Info {
	return resolve(debug.ReadBuildInfo())
}

func resolve(bi *debug.BuildInfo, ok bool) Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	if ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

// String returns the version line printed by `rounds --version`.
func String() string {
	return Get().String()
}

func (i Info) String() string {
	commit := orUnknown(shortCommit(i.Commit))
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("rounds %s (commit: %s, built: %s)", strings.TrimPrefix(i.Version, "v"), commit, orUnknown(i.BuildTime))
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
