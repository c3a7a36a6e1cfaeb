// Package config loads, normalizes, and validates slipstats configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as SLIPSTATS_REPLAY_DIR
// and SLIPSTATS_CODE. Commands obtain every knob through Config so replay
// directories, decoder settings, and the default identity are resolved in one
// pass.
package config
