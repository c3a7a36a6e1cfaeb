// Package main hosts the slipstats CLI entrypoint and command graph.
//
// The Cobra command tree turns terminal invocations into corpus scans and win
// aggregations over a directory of Slippi replays, plus configuration and
// decode-cache maintenance. Configuration resolution, logger construction, and
// decoder wiring live in commandContext so subcommands only describe their
// flags and output.
package main
