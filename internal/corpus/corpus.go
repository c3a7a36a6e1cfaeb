package corpus

import (
	"fmt"

	"slipstats/internal/replay"
)

// Diagnostic records a file or directory that could not be analyzed.
type Diagnostic struct {
	Path string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.Path, d.Err)
}

// Corpus is the set of successfully decoded matches under one root. It must
// not be mutated once Scan returns; aggregations share it across goroutines.
type Corpus struct {
	Root        string
	Matches     []*replay.Match
	Diagnostics []Diagnostic
	// Candidates counts files that matched the replay extension.
	Candidates int
}

// New wraps already-decoded matches, mostly for tests and callers that build
// corpora from other sources.
func New(matches ...*replay.Match) *Corpus {
	return &Corpus{Matches: matches, Candidates: len(matches)}
}

// Len returns the number of decoded matches.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Matches)
}

// Skipped returns the number of candidate files that did not decode.
func (c *Corpus) Skipped() int {
	if c == nil {
		return 0
	}
	return c.Candidates - len(c.Matches)
}
