// Package frontier expands a similarity graph from a start item in rounds,
// recording one weight row per visited item.
//
// Each round takes the items discovered by the previous round, visits them
// in order and, for every visited item, lists the in-band edges to items not
// yet visited. Rows are ragged: a row only has columns for the items known
// when it was written. The adjacency package pads them into an N×N matrix.
package frontier

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/simroute/similarity"
)

// expander encapsulates mutable expansion state. It is the single writer of
// visited and rows for the duration of one Build call.
type expander struct {
	costs   []similarity.CostRow
	opts    Options
	visited *linkedhashset.Set // visitation order, insertion ordered
	rows    [][]float64
	rounds  int
}

// Build runs the frontier expansion over the cost-transformed rows of a
// similarity matrix (costs[i] is row i, keyed by original column).
//
// Returns ErrNoItems for empty input, ErrStartOutOfRange for a bad start,
// ErrOptionViolation/ErrBadBand for bad options, the context error on
// cancellation, or any error returned by the OnVisit hook.
//
// Complexity: O(N · (N + E)) time in the worst case, O(N²) space for rows.
func Build(costs []similarity.CostRow, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(costs) == 0 {
		return nil, ErrNoItems
	}
	if o.Start >= len(costs) {
		return nil, fmt.Errorf("%w: %d with N=%d", ErrStartOutOfRange, o.Start, len(costs))
	}

	e := &expander{
		costs:   costs,
		opts:    o,
		visited: linkedhashset.New(),
		rows:    make([][]float64, 0, len(costs)),
	}

	targets, err := e.seed()
	if err != nil {
		return nil, err
	}
	// One iteration per round; replaces recursion so depth is unbounded.
	for len(targets) > 0 {
		e.rounds++
		o.Logger.Debug().
			Int("round", e.rounds).
			Int("targets", len(targets)).
			Int("visited", e.visited.Size()).
			Msg("frontier round")
		if targets, err = e.round(targets); err != nil {
			return nil, err
		}
	}

	return e.result(), nil
}

// seed writes the start row: 0 for the start itself, then the cost of every
// in-band column in ascending column order. Those columns are round one.
func (e *expander) seed() ([]int, error) {
	start := e.opts.Start
	row := []float64{0}
	var targets []int
	for _, j := range e.costs[start].Columns() {
		if j == start {
			continue
		}
		c, _ := e.costs[start].Cost(j)
		if !e.opts.Band.Contains(c) {
			continue
		}
		row = append(row, c)
		targets = append(targets, j)
	}

	return targets, e.visit(start, row)
}

// round processes targets in order and returns the items it discovered,
// flattened in discovery order.
func (e *expander) round(targets []int) ([]int, error) {
	var next []int
	var staged []int // discovered this round by an earlier sibling
	for _, idx := range targets {
		if e.visited.Contains(idx) {
			continue
		}
		if err := e.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(e.costs) {
			return nil, fmt.Errorf("frontier: item %d has no cost row (N=%d)", idx, len(e.costs))
		}

		eligible := e.eligible(idx)

		// Columns for already visited items: no back-edges, always 0.
		row := make([]float64, e.visited.Size(), len(e.costs))
		// Columns for this round's unvisited targets, idx included (diagonal 0).
		for _, t := range targets {
			if e.visited.Contains(t) {
				continue
			}
			row = append(row, e.take(eligible, idx, t))
		}
		// Columns for items staged by earlier siblings.
		for _, s := range staged {
			row = append(row, e.take(eligible, idx, s))
		}
		// Whatever is left is new.
		for _, v := range eligible.Values() {
			j := v.(int)
			c, _ := e.costs[idx].Cost(j)
			row = append(row, c)
			staged = append(staged, j)
			next = append(next, j)
		}

		if err := e.visit(idx, row); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// eligible returns the in-band columns of idx, ascending, minus visited
// items and idx itself.
func (e *expander) eligible(idx int) *linkedhashset.Set {
	out := linkedhashset.New()
	for _, j := range e.costs[idx].Columns() {
		if j == idx || e.visited.Contains(j) {
			continue
		}
		if c, _ := e.costs[idx].Cost(j); e.opts.Band.Contains(c) {
			out.Add(j)
		}
	}

	return out
}

// take consumes j from eligible and returns cost(idx, j), or 0 if j was not
// eligible.
func (e *expander) take(eligible *linkedhashset.Set, idx, j int) float64 {
	if !eligible.Contains(j) {
		return 0
	}
	eligible.Remove(j)
	c, _ := e.costs[idx].Cost(j)

	return c
}

// visit appends row, marks item visited and runs the hook.
func (e *expander) visit(item int, row []float64) error {
	e.rows = append(e.rows, row)
	e.visited.Add(item)
	if err := e.opts.OnVisit(item, e.visited.Size()-1); err != nil {
		return fmt.Errorf("frontier: OnVisit error at %d: %w", item, err)
	}

	return nil
}

func (e *expander) result() *Result {
	order := make([]int, 0, e.visited.Size())
	for _, v := range e.visited.Values() {
		order = append(order, v.(int))
	}

	return &Result{
		Order:  order,
		Rows:   e.rows,
		Rounds: e.rounds,
	}
}
