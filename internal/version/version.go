// Package version holds build metadata injected via ldflags.
package version

// Title is the human-readable service name reported at startup.
const Title = "Mi aplicación de películas"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "1.0.0"
	Commit  = "unknown"
	Date    = "unknown"
)
