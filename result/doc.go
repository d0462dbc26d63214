// Package result defines the small value types that carry a search outcome
// out of the search package to its callers: the path itself, its cost, and
// the performance counters (expansions, elapsed time) the spec asks every
// run to report.
//
// Result deliberately carries no behavior beyond formatting — it is produced
// by search.Engine and consumed by cmd/dimacspath's output-file writer.
package result
