// Package identity matches replay participants against a caller-supplied
// connect code or nickname.
package identity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"slipstats/internal/replay"
)

// Kind selects which net identity field a query is compared against.
type Kind int

const (
	KindCode Kind = iota
	KindNickname
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindNickname:
		return "nickname"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Query is a code or nickname lookup.
type Query struct {
	Kind  Kind
	Value string
}

// Code builds a connect code query.
func Code(value string) Query {
	return Query{Kind: KindCode, Value: value}
}

// Nickname builds a display name query.
func Nickname(value string) Query {
	return Query{Kind: KindNickname, Value: value}
}

func (q Query) String() string {
	return q.Kind.String() + "=" + q.Value
}

// Normalize folds an identity string to its comparison form: full-width
// characters narrowed, case folded, surrounding space removed. Netplay names
// and codes are entered on the console keyboard, which produces full-width
// glyphs, so "ＡＢＣ＃１２３" and "abc#123" compare equal.
func Normalize(value string) string {
	folded := width.Fold.String(value)
	folded = cases.Fold().String(folded)
	return strings.TrimSpace(folded)
}

// Matches reports whether the participant's net identity satisfies the query.
// Participants without netplay data never match.
func Matches(p replay.Participant, q Query) bool {
	if p.Netplay == nil {
		return false
	}
	var field string
	switch q.Kind {
	case KindCode:
		field = p.Netplay.Code
	case KindNickname:
		field = p.Netplay.Name
	default:
		return false
	}
	return Normalize(field) == Normalize(q.Value)
}

// Matcher applies one query repeatedly, normalizing the query value once.
type Matcher struct {
	kind   Kind
	target string
}

// NewMatcher prepares q for repeated matching.
func NewMatcher(q Query) Matcher {
	return Matcher{kind: q.Kind, target: Normalize(q.Value)}
}

// Match is equivalent to Matches(p, q) for the query the matcher was built from.
func (m Matcher) Match(p replay.Participant) bool {
	if p.Netplay == nil {
		return false
	}
	switch m.kind {
	case KindCode:
		return Normalize(p.Netplay.Code) == m.target
	case KindNickname:
		return Normalize(p.Netplay.Name) == m.target
	default:
		return false
	}
}
