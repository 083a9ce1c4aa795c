// Package vars carries build-time metadata injected via -ldflags.
package vars

import "fmt"

// Version, Commit and Date are overridden at build time via:
//
//	go build -ldflags "-X github.com/woozymasta/spritesqueeze/internal/vars.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Print writes build metadata to stdout.
func Print() {
	fmt.Printf("spritesqueeze %s (commit %s, built %s)\n", Version, Commit, Date)
}
