// Package bucketqueue implements a monotone-priority queue specialized for
// non-negative integer keys whose concurrently outstanding span is bounded.
//
// # What
//
// Queue stores vertex ids in W circular buckets indexed by key-mod-W. A
// cursor tracks the smallest key that might still hold entries; Pop advances
// it lazily, one bucket at a time, rather than maintaining a sorted
// structure. Push is O(1): append to bucket (f mod W). Pop is amortized
// O(1): the cursor only ever moves forward, and over a whole run it moves at
// most max_f - min_f steps in total.
//
// # Why not container/heap
//
// A binary heap gives O(log n) push/pop, which is the right answer when key
// range is unbounded. Road-network A*/Dijkstra pushes f-values (or plain
// distances) whose concurrently outstanding range never exceeds one
// maximum-edge-weight plus one heuristic step — bounded and small relative
// to the number of entries — so a bucket queue trades that bound for true
// O(1) operations, which matters when the search engine dequeues hundreds of
// millions of items.
//
// # Duplicates and lazy deletion
//
// Queue is a multiset: pushing the same vertex id multiple times (as the
// search engine does on every relaxation) is expected and supported.
// Obsolete entries are never removed from a bucket; the caller (search
// package) is responsible for checking its own "closed" bitmap after Pop and
// discarding stale entries. This is the classic lazy-deletion substitute for
// a decrease-key operation.
//
// # Tie-breaking
//
// Within a bucket, Pop removes from the back (LIFO): the most recently
// pushed entry for a given key comes out first. Callers whose tests depend
// on a specific path among equal-cost paths must account for this.
package bucketqueue
