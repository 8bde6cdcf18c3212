// Package route wires the similarity, frontier, adjacency and dijkstra
// packages into a single planner.
//
// Plan takes a similarity matrix through every stage:
//
//	similarity costs ─▶ frontier.Build ─▶ adjacency.Normalize ─▶ dijkstra.Dijkstra
//
// Solve skips the first two stages and runs the solver on an adjacency
// matrix that is already indexed by visitation order, which is how
// hand-built fixtures are exercised.
//
// Positions, targets and path labels all refer to visitation order:
// position 0 is the start item and labels are positions plus one.
package route
