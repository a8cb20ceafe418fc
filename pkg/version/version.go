// Package version exposes the application version derived from build metadata.
//
// Priority: -ldflags override > VCS info from debug.BuildInfo > "dev" fallback.
//
// Usage:
//
//	version.GitCommit  // "a3f8c2d1" or "dev"
//	version.Full()     // "maskit-web/a3f8c2d1" or "maskit-web/dev"
package version

import "runtime/debug"

// AppName is used in version strings and the User-Agent of outgoing requests.
const AppName = "maskit-web"

// gitCommitOverride is set via -ldflags at build time for container builds
// where .git is unavailable.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars) from build info.
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shorten(s.Value)
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

// Full returns "maskit-web/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
