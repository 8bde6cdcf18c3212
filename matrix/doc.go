// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 storage used across
// simroute: similarity matrices, padded weighted-adjacency matrices, and the
// rating matrices fed to the cosine similarity kernel.
//
// What & Why:
//
//	Dense stores r*c values in one flat slice (offset = i*c + j) so scans
//	stay cache friendly and deterministic. At/Set are bounds checked and
//	return sentinel errors instead of panicking. The validators in
//	validators.go are the single source of truth for the structural checks
//	the graph pipeline depends on: squareness, non-negativity, finiteness
//	and a zero diagonal (no self-loops).
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1). Clone, String and every validator run in
//	O(r*c).
package matrix
