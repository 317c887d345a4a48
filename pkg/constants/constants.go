// Package constants provides shared constants used throughout the modmerge
// codebase: probe timeouts, file permissions, and matcher defaults that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define the probe durations used by the URL validator
const (
	// FailedProbeTimeout is the HTTP existence-probe timeout for URLs the
	// resolver reported as failed outright
	FailedProbeTimeout = 10 * time.Second

	// SlowHostProbeTimeout is the shorter probe timeout for hosts known to
	// throttle automated clients
	SlowHostProbeTimeout = 5 * time.Second

	// DefaultHTTPTimeout is the standard timeout for general HTTP requests
	DefaultHTTPTimeout = 30 * time.Second
)

// Matcher defaults
const (
	// DefaultMinNameSimilarity is the default acceptance threshold for
	// heuristic name similarity scores
	DefaultMinNameSimilarity = 0.5

	// DomainMatchScore is the score added when both sides' first link URLs
	// share a host and no name/author evidence was found
	DomainMatchScore = 0.6

	// AuthorSimilarityWeight scales the author Jaccard contribution
	AuthorSimilarityWeight = 0.5
)

// ProbeUserAgent is the browser-like user agent sent with existence probes.
// File lockers commonly reject default Go client agents.
const ProbeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
