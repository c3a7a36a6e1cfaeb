package stats

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"slipstats/internal/melee"
)

// Entry is one row of a per-character win report.
type Entry struct {
	Character melee.Character `json:"-"`
	Name      string          `json:"character"`
	Wins      int             `json:"wins"`
}

// Report is an ordered list of characters with at least one win.
type Report []Entry

// Lines renders each entry as "Name: count".
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r))
	for _, e := range r {
		lines = append(lines, e.Name+": "+strconv.Itoa(e.Wins))
	}
	return lines
}

// String joins Lines with newlines.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Total sums the win counts.
func (r Report) Total() int {
	total := 0
	for _, e := range r {
		total += e.Wins
	}
	return total
}

// newReport sorts a histogram. Equal counts under a count ordering fall back
// to display name ascending; display names are unique so alphabetical
// orderings need no tie-break.
func newReport(hist histogram, ordering Ordering) Report {
	report := make(Report, 0, len(hist))
	for c, n := range hist {
		if n <= 0 {
			continue
		}
		report = append(report, Entry{Character: c, Name: c.String(), Wins: n})
	}
	byName := func(a, b Entry) int { return strings.Compare(a.Name, b.Name) }
	slices.SortFunc(report, func(a, b Entry) int {
		switch ordering {
		case AlphabeticalDesc:
			return byName(b, a)
		case CountAsc:
			return cmp.Or(cmp.Compare(a.Wins, b.Wins), byName(a, b))
		case CountDesc:
			return cmp.Or(cmp.Compare(b.Wins, a.Wins), byName(a, b))
		default:
			return byName(a, b)
		}
	})
	return report
}
