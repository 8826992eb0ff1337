package tui

import "fmt"

// Set with -ldflags "-X github.com/akyairhashvil/fourbyfour/internal/tui.AppVersion=...".
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := "v" + AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("v%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
