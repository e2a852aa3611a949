// Package version derives the running build's identity from build metadata.
// An -ldflags override wins; otherwise the VCS revision stamped by the Go
// toolchain is used; test binaries and non-git builds report "dev".
package version

import "runtime/debug"

// AppName prefixes version strings, user agents, and log lines.
const AppName = "memobase"

// commitOverride is injected with -ldflags for container builds that compile
// outside a git checkout.
var commitOverride string

// Commit is the short hash identifying this build, or "dev".
var Commit = resolveCommit()

// Full renders "memobase/<commit>".
func Full() string {
	return AppName + "/" + Commit
}

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
