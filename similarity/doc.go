// Package similarity holds the item-by-item similarity matrix and the cost
// transform the route builder walks.
//
// A Matrix is an immutable N×N grid of non-negative similarity scores with
// the diagonal forced to zero (an item is never its own neighbour). Costs
// turns every row into a sparse CostRow: column → 1/similarity for each
// non-zero entry. Zero entries mean "no edge" and are dropped, never
// inverted. Because the mapping is keyed by the original column, dropping
// zeros cannot shift the meaning of the surviving entries.
//
// Cosine builds a Matrix from an item×user rating matrix. Row pairs are
// independent, so the kernel fans out over a bounded errgroup; the result is
// identical for any worker count.
//
// Errors:
//
//	– ErrInvalidInput   malformed input (empty, ragged, non-square, negative, NaN/Inf).
//	– ErrIndexOutOfRange row/column index outside [0, N).
package similarity
