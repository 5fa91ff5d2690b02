package version

// Build information, overridden at release time with
// -ldflags "-X github.com/arthur-debert/termout/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
