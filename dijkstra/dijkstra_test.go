// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checking, tie-breaking, thresholds, path
// reconstruction and the invariants every run must hold.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/simroute/dijkstra"
	"github.com/katalvlaran/simroute/matrix"
)

// nineNodes is the hand-verified regression fixture: 9 nodes, edges only
// from lower to higher positions.
var nineNodes = [][]float64{
	{0, .8, .6, 0, 0, 0, 0, 0, 0},
	{0, 0, .5, .4, 0, 0, 0, 0, 0},
	{0, 0, 0, .9, .2, .7, 0, 0, 0},
	{0, 0, 0, 0, .8, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, .5, .4, 0},
	{0, 0, 0, 0, 0, 0, 0, .9, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, .8},
	{0, 0, 0, 0, 0, 0, 0, 0, .6},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}
	return m
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_NilMatrix(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil); !errors.Is(err, dijkstra.ErrNilMatrix) {
		t.Fatalf("Expected ErrNilMatrix, got %v", err)
	}
	var typed *matrix.Dense
	if _, err := dijkstra.Dijkstra(typed); !errors.Is(err, dijkstra.ErrNilMatrix) {
		t.Fatalf("Expected ErrNilMatrix for typed nil, got %v", err)
	}
}

func TestDijkstra_NonSquare(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	if _, err := dijkstra.Dijkstra(m); !errors.Is(err, dijkstra.ErrNonSquare) {
		t.Fatalf("Expected ErrNonSquare, got %v", err)
	}
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	m := dense(t, [][]float64{{0, 1}, {0, 0}})
	for _, s := range []int{-1, 2} {
		if _, err := dijkstra.Dijkstra(m, dijkstra.Source(s)); !errors.Is(err, dijkstra.ErrSourceOutOfRange) {
			t.Errorf("Source(%d): expected ErrSourceOutOfRange, got %v", s, err)
		}
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	m := dense(t, [][]float64{{0, -5}, {0, 0}})
	if _, err := dijkstra.Dijkstra(m); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_BadOptions(t *testing.T) {
	m := dense(t, [][]float64{{0}})
	if _, err := dijkstra.Dijkstra(m, dijkstra.WithMaxDistance(-1)); !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Errorf("Expected ErrBadMaxDistance, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(m, dijkstra.WithInfEdgeThreshold(0)); !errors.Is(err, dijkstra.ErrBadInfThreshold) {
		t.Errorf("Expected ErrBadInfThreshold, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Regression fixture
// ------------------------------------------------------------------------

func TestDijkstra_NineNodeFixture(t *testing.T) {
	res, err := dijkstra.Dijkstra(dense(t, nineNodes))
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, .8, .6, 1.2, .8, 1.3, 1.3, 1.2, 1.8}
	for i, w := range want {
		if math.Abs(res.Dist[i]-w) > 1e-9 {
			t.Errorf("Dist[%d] = %v; want %v", i, res.Dist[i], w)
		}
	}
	wantPrev := []int{dijkstra.NoPredecessor, 0, 0, 1, 2, 2, 4, 4, 7}
	for i, p := range wantPrev {
		if res.Prev[i] != p {
			t.Errorf("Prev[%d] = %d; want %d", i, res.Prev[i], p)
		}
	}

	path, err := res.PathTo(8)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dijkstra.FormatPath(path), "9 <- 8 <- 5 <- 3 <- 1"; got != want {
		t.Errorf("FormatPath = %q; want %q", got, want)
	}
}

// ------------------------------------------------------------------------
// 3. Selection order, thresholds and unreachable nodes
// ------------------------------------------------------------------------

func TestDijkstra_TieBreakLowestIndex(t *testing.T) {
	// 0→1 and 0→2 both cost 1; 1→3 and 2→3 both cost 1.
	m := dense(t, [][]float64{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	res, err := dijkstra.Dijkstra(m)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Settled; len(got) != 4 || got[0] != 0 || got[1] != 1 || got[2] != 2 || got[3] != 3 {
		t.Errorf("Settled = %v; want [0 1 2 3]", got)
	}
	// Equal-cost path via 2 does not replace the predecessor found via 1.
	if res.Prev[3] != 1 {
		t.Errorf("Prev[3] = %d; want 1", res.Prev[3])
	}
}

func TestDijkstra_UnreachableSettledLast(t *testing.T) {
	// Node 1 has no incoming edge.
	m := dense(t, [][]float64{
		{0, 0, 2},
		{0, 0, 1},
		{0, 0, 0},
	})
	res, err := dijkstra.Dijkstra(m)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Dist[1], 1) {
		t.Errorf("Dist[1] = %v; want +Inf", res.Dist[1])
	}
	if res.Prev[1] != dijkstra.NoPredecessor {
		t.Errorf("Prev[1] = %d; want NoPredecessor", res.Prev[1])
	}
	if res.Reachable(1) {
		t.Error("Reachable(1) = true; want false")
	}
	if got := res.Settled; len(got) != 3 || got[2] != 1 {
		t.Errorf("Settled = %v; want unreachable node last", got)
	}
	if _, err := res.PathTo(1); !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Errorf("PathTo(1): expected ErrUnreachable, got %v", err)
	}
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	m := dense(t, [][]float64{
		{0, 2, 10},
		{0, 0, 4},
		{0, 0, 0},
	})
	res, err := dijkstra.Dijkstra(m, dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[2] != 6 {
		t.Errorf("Dist[2] = %v; want 6", res.Dist[2])
	}
	res, err = dijkstra.Dijkstra(m, dijkstra.WithInfEdgeThreshold(3))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Dist[2], 1) {
		t.Errorf("Dist[2] = %v; want +Inf with threshold 3", res.Dist[2])
	}
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	m := dense(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	res, err := dijkstra.Dijkstra(m, dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[1] != 1 {
		t.Errorf("Dist[1] = %v; want 1", res.Dist[1])
	}
	if !math.IsInf(res.Dist[2], 1) || !math.IsInf(res.Dist[3], 1) {
		t.Errorf("Dist = %v; want +Inf beyond MaxDistance", res.Dist)
	}
}

func TestDijkstra_NonZeroSource(t *testing.T) {
	res, err := dijkstra.Dijkstra(dense(t, nineNodes), dijkstra.Source(4))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[4] != 0 || !math.IsInf(res.Dist[0], 1) {
		t.Errorf("Dist = %v; want 0 at source and +Inf upstream", res.Dist)
	}
	path, err := res.PathTo(8)
	if err != nil {
		t.Fatal(err)
	}
	if got := dijkstra.FormatPath(path); got != "9 <- 8 <- 5" {
		t.Errorf("FormatPath = %q", got)
	}
}

// ------------------------------------------------------------------------
// 4. Invariants
// ------------------------------------------------------------------------

func TestDijkstra_SingleNode(t *testing.T) {
	res, err := dijkstra.Dijkstra(dense(t, [][]float64{{0}}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != 0 {
		t.Errorf("Dist[0] = %v; want 0", res.Dist[0])
	}
	path, err := res.PathTo(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := dijkstra.FormatPath(path); got != "1" {
		t.Errorf("FormatPath = %q; want %q", got, "1")
	}
}

func TestDijkstra_PathValidity(t *testing.T) {
	res, err := dijkstra.Dijkstra(dense(t, nineNodes))
	if err != nil {
		t.Fatal(err)
	}
	n := len(nineNodes)
	for target := 0; target < n; target++ {
		path, err := res.PathTo(target)
		if err != nil {
			t.Fatalf("PathTo(%d): %v", target, err)
		}
		if path[0] != 0 || path[len(path)-1] != target {
			t.Errorf("PathTo(%d) = %v; want 0 … %d", target, path, target)
		}
		if len(path)-1 > n-1 {
			t.Errorf("PathTo(%d) has %d steps; want ≤ %d", target, len(path)-1, n-1)
		}
		// Summing in path order reproduces the relaxation arithmetic exactly.
		var sum float64
		for k := 1; k < len(path); k++ {
			sum += nineNodes[path[k-1]][path[k]]
		}
		if sum != res.Dist[target] {
			t.Errorf("path cost to %d = %v; Dist = %v", target, sum, res.Dist[target])
		}
	}
}

func TestDijkstra_MonotoneAndOncePerNode(t *testing.T) {
	settled := map[int]bool{}
	var last float64
	res, err := dijkstra.Dijkstra(dense(t, nineNodes), dijkstra.WithOnSettle(func(node int, d float64) {
		if settled[node] {
			t.Errorf("node %d settled twice", node)
		}
		settled[node] = true
		if d < last {
			t.Errorf("settled %d at %v after %v; distances must not decrease", node, d, last)
		}
		last = d
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(settled) != len(nineNodes) {
		t.Errorf("settled %d nodes; want %d", len(settled), len(nineNodes))
	}
	for i, d := range res.Dist {
		if d < 0 {
			t.Errorf("Dist[%d] = %v < 0", i, d)
		}
	}
}

func TestPathTo_CorruptedChain(t *testing.T) {
	// A predecessor cycle that never reaches the source.
	res := &dijkstra.Result{
		Source: 0,
		Dist:   []float64{0, 1, 1},
		Prev:   []int{dijkstra.NoPredecessor, 2, 1},
	}
	if _, err := res.PathTo(1); !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Fatalf("Expected ErrUnreachable, got %v", err)
	}
	if _, err := res.PathTo(3); !errors.Is(err, dijkstra.ErrTargetOutOfRange) {
		t.Fatalf("Expected ErrTargetOutOfRange, got %v", err)
	}
}

func TestDijkstra_Deterministic(t *testing.T) {
	a, err := dijkstra.Dijkstra(dense(t, nineNodes))
	if err != nil {
		t.Fatal(err)
	}
	b, err := dijkstra.Dijkstra(dense(t, nineNodes))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Dist {
		if a.Dist[i] != b.Dist[i] || a.Prev[i] != b.Prev[i] {
			t.Fatalf("run mismatch at %d: %v/%d vs %v/%d", i, a.Dist[i], a.Prev[i], b.Dist[i], b.Prev[i])
		}
	}
}
