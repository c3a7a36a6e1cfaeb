// Package replay defines the decoded match model consumed by the analysis
// pipeline and the Decoder contract that produces it.
//
// Matches are immutable once decoded. Winner resolves the placement-0 entry
// of a match's outcome to the participant on that port; matches without a
// decision simply report no winner.
package replay
