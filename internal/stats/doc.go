// Package stats aggregates wins over a decoded corpus.
//
// Both aggregations split the corpus into disjoint shards, reduce each shard
// on its own goroutine, and merge the partial results with commutative,
// associative operators, so the outcome never depends on worker count or
// scheduling order.
package stats
