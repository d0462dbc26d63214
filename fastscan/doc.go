// Package fastscan provides byte-level cursor primitives for parsing
// line-oriented ASCII text without per-token heap allocation.
//
// # What & Why
//
// The DIMACS 9th-Challenge road-network files are multi-gigabyte, strictly
// line-oriented, and ASCII-only. Reading them with locale-aware stream
// extraction (fmt.Sscanf, bufio.Scanner plus strconv.Atoi on split tokens)
// allocates a string and/or a []byte per token; at hundreds of millions of
// tokens that dominates wall time and GC pressure long before the graph
// search itself does.
//
// fastscan instead operates on a read-only []byte and a plain int cursor:
// every function takes (buf, pos) and returns the advanced pos. Nothing in
// this package allocates.
//
// # Operations
//
//   - SkipSpaces     — advance past ' '/'\t'.
//   - SkipNonSpaces  — advance past anything that is not ' ', '\t', or '\n'.
//   - SkipLine       — advance past the next '\n' (or to end of buffer).
//   - ParseUnsigned  — read ASCII digits into a uint64; 0 on an empty span.
//   - ParseSigned    — optional leading '-', then as ParseUnsigned, negated.
//
// # Complexity
//
// Every function is O(k) in the number of bytes it consumes, O(1) space.
package fastscan
