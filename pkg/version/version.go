// pkg/version/version.go

package version

import (
	"fmt"
	"runtime/debug"
)

// overridden with -ldflags "-X termkit/pkg/version.version=..."
var (
	version      = "0.1-dev"
	revision     = ""
	revisionDate = ""
)

// Version returns the version in format - `VERSION (REVISIONDATE REVISION)`.
// Without linker overrides the revision is read from the VCS stamp of the binary.
func Version() string {
	rev, date := revision, revisionDate
	if rev == "" {
		rev, date = vcsStamp()
	}
	if rev == "" {
		return version
	}
	return fmt.Sprintf("%v (%v %v)", version, date, rev)
}

func vcsStamp() (rev, date string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}
		case "vcs.time":
			date = s.Value
			if len(date) > 10 {
				date = date[:10]
			}
		}
	}
	return rev, date
}
