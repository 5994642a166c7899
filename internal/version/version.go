package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/ccid-tools/readerlist/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/ccid-tools/readerlist/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/ccid-tools/readerlist/internal/version.Date={{.Date}}
)
