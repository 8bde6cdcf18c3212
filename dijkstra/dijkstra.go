// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense
// weighted adjacency matrix.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all entries (O(N²)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never relax to a distance above MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The heap orders by (distance, index), so the node settled next is always the
//     lowest-index node among those at the minimum distance.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/simroute/matrix"
)

// PathSeparator joins node labels in FormatPath, target first.
const PathSeparator = " <- "

// Result holds the solver output.
//
//   - Dist[i]: shortest distance from Source to i, +Inf if unreachable.
//   - Prev[i]: node before i on a shortest path, NoPredecessor for the
//     source and for unreachable nodes.
//   - Settled: nodes in the order they left the unsettled set.
type Result struct {
	Source  int
	Dist    []float64
	Prev    []int
	Settled []int
}

// Dijkstra computes shortest distances from Options.Source to every node of
// the square, non-negative adjacency matrix m (m[u][v] = cost of u→v, 0 = no edge).
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. m must be square (ErrNonSquare).
//  3. options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  4. Source must be in [0, N) (ErrSourceOutOfRange).
//  5. No entry can be negative or NaN (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(N² + E log N)
//   - Space: O(N² ) for the row snapshot, O(N + E) for the run itself.
func Dijkstra(m matrix.Matrix, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, ErrNilMatrix
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}

	// 3) Surface option errors
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 4) Validate Source
	n := m.Rows()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d with N=%d", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 5) Snapshot rows and pre-scan weights.
	w, err := snapshot(m)
	if err != nil {
		return nil, err
	}

	r := &runner{
		w:       w,
		options: cfg,
		res: &Result{
			Source:  cfg.Source,
			Dist:    make([]float64, n),
			Prev:    make([]int, n),
			Settled: make([]int, 0, n),
		},
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()
	r.settleUnreached()

	return r.res, nil
}

// snapshot copies m into row slices, failing on the first negative or NaN entry.
func snapshot(m matrix.Matrix) ([][]float64, error) {
	var rows [][]float64
	if d, ok := m.(*matrix.Dense); ok {
		rows = d.Rows2D()
	} else {
		rows = make([][]float64, m.Rows())
		var err error
		for i := range rows {
			rows[i] = make([]float64, m.Cols())
			for j := range rows[i] {
				if rows[i][j], err = m.At(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	for u, row := range rows {
		for v, x := range row {
			if x < 0 || math.IsNaN(x) {
				// Return the sentinel error with context of which edge failed.
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, x)
			}
		}
	}

	return rows, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	w       [][]float64 // read-only weight snapshot
	options Options
	res     *Result
	settled []bool // false ⇒ still in the unsettled set
	pq      nodePQ // min-heap of *nodeItem ordered by (dist, id)
}

// init sets dist = +Inf and prev = NoPredecessor everywhere, dist[Source] = 0,
// and pushes the source onto the heap.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = NoPredecessor
	}
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unsettled node and relaxes its edges,
// until the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.settled[u] || item.dist > r.res.Dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settle(u)
		r.relax(u)
	}
}

// settle removes u from the unsettled set.
func (r *runner) settle(u int) {
	r.settled[u] = true
	r.res.Settled = append(r.res.Settled, u)
	r.options.OnSettle(u, r.res.Dist[u])
}

// relax tries to improve every v with a non-zero edge u→v.
// Assumes Dist[u] is final.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for v, w := range r.w[u] {
		// 0 is "no edge"; ≥ threshold is a wall.
		if w == 0 || w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: equal-cost alternatives keep the first predecessor.
		if nd >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// settleUnreached drains the unsettled set: whatever is left has +Inf
// distance, and relaxing from it cannot improve anything.
func (r *runner) settleUnreached() {
	for v, done := range r.settled {
		if !done {
			r.settle(v)
		}
	}
}

// Reachable reports whether t has a finite distance from the source.
func (res *Result) Reachable(t int) bool {
	return t >= 0 && t < len(res.Dist) && !math.IsInf(res.Dist[t], 1)
}

// PathTo reconstructs the shortest path from the source to t, source first.
//
// Returns ErrTargetOutOfRange for a bad index and ErrUnreachable when t has
// no finite distance or when the predecessor chain does not reach the source
// within N steps (a corrupted chain must not loop forever).
func (res *Result) PathTo(t int) ([]int, error) {
	n := len(res.Dist)
	if t < 0 || t >= n {
		return nil, fmt.Errorf("%w: %d with N=%d", ErrTargetOutOfRange, t, n)
	}
	if !res.Reachable(t) {
		return nil, fmt.Errorf("%w: node %d", ErrUnreachable, t)
	}

	// build reversed path
	path := []int{t}
	for cur, steps := t, 0; cur != res.Source; steps++ {
		if steps >= n {
			return nil, fmt.Errorf("%w: predecessor chain from %d does not reach %d", ErrUnreachable, t, res.Source)
		}
		prev := res.Prev[cur]
		if prev == NoPredecessor || prev < 0 || prev >= n {
			return nil, fmt.Errorf("%w: chain from %d breaks at %d", ErrUnreachable, t, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get source → t
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// FormatPath renders a source-first path target first, with 1-based labels:
// [0 2 4] becomes "5 <- 3 <- 1".
func FormatPath(path []int) string {
	var b strings.Builder
	for i := len(path) - 1; i >= 0; i-- {
		b.WriteString(strconv.Itoa(path[i] + 1))
		if i > 0 {
			b.WriteString(PathSeparator)
		}
	}

	return b.String()
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int     // node index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances go to the lower index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
