package stats

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"slipstats/internal/corpus"
	"slipstats/internal/identity"
	"slipstats/internal/melee"
	"slipstats/internal/replay"
)

type histogram map[melee.Character]int

func (h histogram) merge(other histogram) histogram {
	for c, n := range other {
		h[c] += n
	}
	return h
}

// Aggregator runs win aggregations with a bounded number of workers. The zero
// value uses GOMAXPROCS workers.
type Aggregator struct {
	Workers int
}

// TotalWins counts the matches whose winner satisfies q.
func (a Aggregator) TotalWins(c *corpus.Corpus, q identity.Query) int {
	matcher := identity.NewMatcher(q)
	return reduce(a.workers(), matches(c), 0,
		func(shard []*replay.Match) int {
			n := 0
			for _, m := range shard {
				if _, ok := winnerMatching(m, matcher); ok {
					n++
				}
			}
			return n
		},
		func(acc, part int) int { return acc + part },
	)
}

// WinsByCharacter counts wins per character for the winners matching q and
// returns them sorted by ordering.
func (a Aggregator) WinsByCharacter(c *corpus.Corpus, q identity.Query, ordering Ordering) Report {
	matcher := identity.NewMatcher(q)
	hist := reduce(a.workers(), matches(c), histogram{},
		func(shard []*replay.Match) histogram {
			part := histogram{}
			for _, m := range shard {
				if w, ok := winnerMatching(m, matcher); ok {
					part[w.Character()]++
				}
			}
			return part
		},
		histogram.merge,
	)
	return newReport(hist, ordering)
}

// TotalWins runs Aggregator.TotalWins with default workers.
func TotalWins(c *corpus.Corpus, q identity.Query) int {
	return Aggregator{}.TotalWins(c, q)
}

// WinsByCharacter runs Aggregator.WinsByCharacter with default workers.
func WinsByCharacter(c *corpus.Corpus, q identity.Query, ordering Ordering) Report {
	return Aggregator{}.WinsByCharacter(c, q, ordering)
}

func (a Aggregator) workers() int {
	if a.Workers > 0 {
		return a.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func matches(c *corpus.Corpus) []*replay.Match {
	if c == nil {
		return nil
	}
	return c.Matches
}

func winnerMatching(m *replay.Match, matcher identity.Matcher) (replay.Participant, bool) {
	w, ok := replay.Winner(m)
	if !ok || !matcher.Match(w) {
		return replay.Participant{}, false
	}
	return w, true
}

// reduce splits items into at most workers contiguous shards, maps each shard
// on its own goroutine, and folds the partial results into zero in shard
// order. merge must be associative and commutative.
func reduce[T any](workers int, items []*replay.Match, zero T, mapShard func([]*replay.Match) T, merge func(T, T) T) T {
	if len(items) == 0 {
		return zero
	}
	if workers > len(items) {
		workers = len(items)
	}
	size := (len(items) + workers - 1) / workers
	shards := (len(items) + size - 1) / size
	partials := make([]T, shards)

	var g errgroup.Group
	for i := range shards {
		lo := i * size
		hi := min(lo+size, len(items))
		g.Go(func() error {
			partials[i] = mapShard(items[lo:hi])
			return nil
		})
	}
	_ = g.Wait()

	acc := zero
	for _, part := range partials {
		acc = merge(acc, part)
	}
	return acc
}
