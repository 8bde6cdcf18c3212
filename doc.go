// Package simroute turns an item-to-item similarity matrix into a weighted
// route graph and finds the cheapest route from a start item to the last
// item the graph reaches.
//
// The pipeline, one subpackage per stage:
//
//	similarity/  validated N×N similarity matrix, cosine from ratings, cost rows (1/s)
//	frontier/    round-based expansion from the start item inside a cost band
//	adjacency/   pads ragged expansion rows into an N×N adjacency matrix
//	dijkstra/    single-source shortest paths with predecessor reconstruction
//	route/       wires the stages together and prints the report
//	matrix/      dense row-major storage and validators shared by all stages
//
// Quick ASCII example (similarity 0.8 ⇒ cost 1.25):
//
//	1 ──1.25── 2 ──1.25── 3
//
//	-----path-----
//	3 <- 2 <- 1
//	-----distance-----
//	2.5
//
// The simroute command (cmd/simroute) reads the matrix from a .npy file.
//
//	go install github.com/katalvlaran/simroute/cmd/simroute@latest
package simroute
