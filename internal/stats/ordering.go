package stats

import (
	"fmt"
	"strings"
)

// Ordering selects how a Report is sorted.
type Ordering int

const (
	AlphabeticalAsc Ordering = iota
	AlphabeticalDesc
	CountAsc
	CountDesc
)

var orderingNames = map[Ordering]string{
	AlphabeticalAsc:  "alpha-asc",
	AlphabeticalDesc: "alpha-desc",
	CountAsc:         "count-asc",
	CountDesc:        "count-desc",
}

func (o Ordering) String() string {
	if name, ok := orderingNames[o]; ok {
		return name
	}
	return fmt.Sprintf("ordering(%d)", int(o))
}

// OrderingNames lists the accepted flag values.
func OrderingNames() []string {
	return []string{"alpha-asc", "alpha-desc", "count-asc", "count-desc"}
}

// ParseOrdering accepts the flag values from OrderingNames as well as the
// long forms ("alphabetical-asc") and underscores instead of dashes.
func ParseOrdering(value string) (Ordering, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.Replace(normalized, "alphabetical-", "alpha-", 1)
	for o, name := range orderingNames {
		if name == normalized {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown ordering %q (want one of %s)", value, strings.Join(OrderingNames(), ", "))
}
