// Package dimacsparser reads the DIMACS 9th-Challenge arc and coordinate
// files for a dataset basename and builds an immutable graph.Graph.
//
// Parse opens <basename>.gr (arcs) and <basename>.co (coordinates) and runs
// the two-pass CSR construction algorithm:
//
//  1. Scan the arc file once, classifying each line by its first
//     non-whitespace byte (c/p/a/e), allocating an intermediate arc buffer
//     when the p header is consumed and appending each arc to it.
//  2. Count each source vertex's out-degree from the arc buffer and
//     prefix-sum the degree array into row_ptr.
//  3. Scatter the arc buffer into col_idx/weights using a cursor copy of
//     row_ptr, preserving each source vertex's original arc order.
//  4. Scan the coordinate file once, writing coords[id-1] for each v line.
//
// Both files are memory-mapped where the platform supports it (mmap_unix.go)
// and read whole into memory otherwise (mmap_other.go); fastscan walks the
// resulting []byte without any per-line allocation.
//
// Complexity: O(n+m) time, O(n+m) peak memory (the arc buffer is discarded
// once CSR construction completes).
package dimacsparser
