package preflight

import (
	"slipstats/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	// Optional failures are reported but do not make the config unusable.
	Optional bool   `json:"optional"`
	Detail   string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
// The cache directory is only checked when the decode cache is enabled.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckReadableDirectory("Replay directory", cfg.Paths.ReplayDir))

	if cfg.Scan.CacheEnabled {
		cache := CheckDirectoryAccess("Cache directory", cfg.Paths.CacheDir)
		cache.Optional = true
		results = append(results, cache)
	}

	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	results = append(results, CheckDecoder(cfg))
	return results
}

// Failed returns the results that did not pass and are not optional.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r)
		}
	}
	return failed
}
