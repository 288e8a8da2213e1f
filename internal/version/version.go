package version

import (
	"fmt"
	"runtime/debug"
)

// Commit and BuildTime are stamped through -ldflags -X. When they are left
// unset, the VCS settings embedded by the Go toolchain are used instead.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

const unknown = "unknown"

// Info identifies a rocketsim build.
type Info struct {
	Commit    string
	BuildTime string
	Modified  bool
}

// Get resolves the build identity.
func Get() Info {
	return resolve(debug.ReadBuildInfo)
}

func resolve(read func() (*debug.BuildInfo, bool)) Info {
	info := Info{Commit: Commit, BuildTime: BuildTime}
	if info.Commit != unknown && info.BuildTime != unknown {
		return info
	}

	bi, ok := read()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders the build identity for `rocketsim version`.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("rocketsim dev (commit: %s, built: %s)", commit, i.BuildTime)
}

// String returns the version line for the running binary.
func String() string {
	return Get().String()
}
