// Package preflight provides readiness checks for the filesystem paths and
// external tools slipstats depends on.
//
// "slipstats config validate" runs RunAll and prints each result. Scans do not
// gate on these checks: a missing replay directory is reported as a corpus
// diagnostic instead.
package preflight
