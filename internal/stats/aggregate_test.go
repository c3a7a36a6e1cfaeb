package stats

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"slipstats/internal/corpus"
	"slipstats/internal/identity"
	"slipstats/internal/melee"
	"slipstats/internal/replay"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// won builds a two-player match won by code playing character.
func won(code string, character melee.Character) *replay.Match {
	return &replay.Match{
		Participants: []replay.Participant{
			{Port: 0, CharacterID: int(character), Netplay: &replay.NetIdentity{Code: code, Name: "name-" + code}},
			{Port: 1, CharacterID: int(melee.Marth), Netplay: &replay.NetIdentity{Code: "OPP#999", Name: "opp"}},
		},
		Outcome: &replay.Outcome{Placements: []replay.Placement{{Port: 1, Placement: 1}, {Port: 0, Placement: 0}}},
	}
}

func undecided(code string) *replay.Match {
	m := won(code, melee.Fox)
	m.Outcome = nil
	return m
}

func TestTotalWinsMatchesNormalizedCode(t *testing.T) {
	c := corpus.New(
		won("ABC#123", melee.Fox),
		won("XYZ#000", melee.Falco),
		won("XYZ#000", melee.Sheik),
	)
	if got := TotalWins(c, identity.Code("abc#123")); got != 1 {
		t.Fatalf("TotalWins = %d, want 1", got)
	}
	if got := TotalWins(c, identity.Code("xyz#000")); got != 2 {
		t.Fatalf("TotalWins = %d, want 2", got)
	}
	if got := TotalWins(c, identity.Nickname("NAME-ABC#123")); got != 1 {
		t.Fatalf("nickname TotalWins = %d, want 1", got)
	}
}

func TestTotalWinsIgnoresUndecidedAndLosses(t *testing.T) {
	c := corpus.New(undecided("ABC#123"), won("OPP#999", melee.Fox), won("ABC#123", melee.Fox))
	if got := TotalWins(c, identity.Code("ABC#123")); got != 1 {
		t.Fatalf("TotalWins = %d, want 1", got)
	}
	if got := TotalWins(nil, identity.Code("ABC#123")); got != 0 {
		t.Fatalf("nil corpus should count 0, got %d", got)
	}
}

func TestWinsByCharacterCountDescBreaksTiesAlphabetically(t *testing.T) {
	c := corpus.New(
		won("ME#1", melee.Fox),
		won("ME#1", melee.Fox),
		won("ME#1", melee.Marth),
		won("ME#1", melee.Falco),
		won("ME#1", melee.Fox),
		won("THEM#2", melee.Peach),
	)
	report := WinsByCharacter(c, identity.Code("me#1"), CountDesc)
	want := []string{"Fox: 3", "Falco: 1", "Marth: 1"}
	if diff := cmp.Diff(want, report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if report.String() != "Fox: 3\nFalco: 1\nMarth: 1" {
		t.Fatalf("unexpected rendering %q", report.String())
	}
}

func TestWinsByCharacterOrderings(t *testing.T) {
	c := corpus.New(
		won("ME#1", melee.Sheik),
		won("ME#1", melee.Sheik),
		won("ME#1", melee.CaptainFalcon),
		won("ME#1", melee.Jigglypuff),
		won("ME#1", melee.Jigglypuff),
		won("ME#1", melee.Jigglypuff),
		won("ME#1", melee.Character(200)),
	)
	tests := []struct {
		ordering Ordering
		want     []string
	}{
		{AlphabeticalAsc, []string{"Captain Falcon: 1", "Jigglypuff: 3", "Sheik: 2", "UNKNOWN: 1"}},
		{AlphabeticalDesc, []string{"UNKNOWN: 1", "Sheik: 2", "Jigglypuff: 3", "Captain Falcon: 1"}},
		{CountAsc, []string{"Captain Falcon: 1", "UNKNOWN: 1", "Sheik: 2", "Jigglypuff: 3"}},
		{CountDesc, []string{"Jigglypuff: 3", "Sheik: 2", "Captain Falcon: 1", "UNKNOWN: 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.ordering.String(), func(t *testing.T) {
			got := WinsByCharacter(c, identity.Code("ME#1"), tt.ordering).Lines()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWinsByCharacterEmpty(t *testing.T) {
	report := WinsByCharacter(corpus.New(undecided("ME#1")), identity.Code("ME#1"), CountDesc)
	if len(report) != 0 || report.String() != "" {
		t.Fatalf("expected empty report, got %v", report)
	}
}

func randomCorpus(r *rand.Rand, n int) *corpus.Corpus {
	codes := []string{"ME#1", "me#1", "ＭＥ＃１", "YOU#2"}
	matches := make([]*replay.Match, 0, n)
	for range n {
		code := codes[r.IntN(len(codes))]
		m := won(code, melee.Character(r.IntN(40)))
		switch r.IntN(6) {
		case 0:
			m.Outcome = nil
		case 1:
			m.Outcome.Placements[1].Port = 7
		case 2:
			m.Participants[0].Netplay = nil
		}
		matches = append(matches, m)
	}
	return corpus.New(matches...)
}

func sequentialWins(c *corpus.Corpus, q identity.Query) int {
	n := 0
	for _, m := range c.Matches {
		if w, ok := replay.Winner(m); ok && identity.Matches(w, q) {
			n++
		}
	}
	return n
}

func TestAggregationIndependentOfWorkersAndOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	c := randomCorpus(r, 500)
	q := identity.Code("me#1")
	want := sequentialWins(c, q)
	if want == 0 {
		t.Fatal("fixture should contain wins")
	}
	wantReport := Aggregator{Workers: 1}.WinsByCharacter(c, q, CountDesc)

	for _, workers := range []int{1, 2, 3, 7, 64, 1000} {
		shuffled := append([]*replay.Match(nil), c.Matches...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		sc := corpus.New(shuffled...)
		agg := Aggregator{Workers: workers}

		if got := agg.TotalWins(sc, q); got != want {
			t.Fatalf("workers=%d: TotalWins = %d, want %d", workers, got, want)
		}
		if diff := cmp.Diff(wantReport, agg.WinsByCharacter(sc, q, CountDesc)); diff != "" {
			t.Fatalf("workers=%d: report mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestHistogramSumEqualsTotalWinsForEveryOrdering(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := range 5 {
		c := randomCorpus(r, 50+i*37)
		for _, q := range []identity.Query{identity.Code("ME#1"), identity.Code("you#2"), identity.Nickname("name-me#1")} {
			total := TotalWins(c, q)
			for _, o := range []Ordering{AlphabeticalAsc, AlphabeticalDesc, CountAsc, CountDesc} {
				if got := WinsByCharacter(c, q, o).Total(); got != total {
					t.Fatalf("%s %v: histogram total %d != TotalWins %d", o, q, got, total)
				}
			}
		}
	}
}

func TestParseOrdering(t *testing.T) {
	tests := map[string]Ordering{
		"alpha-asc":         AlphabeticalAsc,
		"Alphabetical_Desc": AlphabeticalDesc,
		"count-asc":         CountAsc,
		" COUNT-DESC ":      CountDesc,
	}
	for in, want := range tests {
		got, err := ParseOrdering(in)
		if err != nil || got != want {
			t.Fatalf("ParseOrdering(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOrdering("random"); err == nil {
		t.Fatal("expected error for unknown ordering")
	}
	if fmt.Sprint(Ordering(42)) != "ordering(42)" {
		t.Fatalf("unexpected String for unknown ordering")
	}
}
