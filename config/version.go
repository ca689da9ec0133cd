package config

import "fmt"

// Overridden at build time with -ldflags "-X".
var (
	Version       = "dev"
	CommitHash    = "n/a"
	BuildTime     = "n/a"
	VersionString = fmt.Sprintf("%s-%s (%s)", Version, CommitHash, BuildTime)
)

// UserAgent identifies this service on outbound inference calls.
func UserAgent() string {
	return fmt.Sprintf("chatsummary/%s", Version)
}
