// Package dijkstra implements single-source shortest paths over a dense,
// non-negative weighted adjacency matrix.
//
// Overview:
//
//   - Node i is row/column i of the matrix; a zero entry means "no edge".
//   - Every iteration settles the unsettled node with the smallest distance,
//     ties going to the lowest index, then relaxes its outgoing edges with a
//     strict "<" improvement test.
//   - Unreachable nodes keep +Inf and NoPredecessor; they are settled last,
//     in ascending index, so exactly one node is settled per iteration.
//   - Result.PathTo walks predecessors back to the source and fails with
//     ErrUnreachable instead of printing an infinite distance.
//
// Performance and complexity:
//
//   - Time:  O(N² + E log N) – relaxation scans every row once, the heap
//     holds at most one entry per relaxation (lazy decrease-key).
//   - Space: O(N + E).
//
// Thread safety:
//
//   - Dijkstra never writes to the matrix. Concurrent runs over the same
//     matrix are safe as long as nobody mutates it.
//
// See also:
//
//   - adjacency.Normalize: builds the matrix this solver consumes.
//   - route.Plan: runs the whole similarity → path pipeline.
package dijkstra
