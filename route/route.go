package route

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/simroute/adjacency"
	"github.com/katalvlaran/simroute/dijkstra"
	"github.com/katalvlaran/simroute/frontier"
	"github.com/katalvlaran/simroute/matrix"
	"github.com/katalvlaran/simroute/similarity"
)

// ErrNilSimilarity is returned by Plan when no similarity matrix is given.
var ErrNilSimilarity = errors.New("route: similarity matrix is nil")

// LastNode selects the last visited node as the target.
const LastNode = -1

// Config drives a Plan or Solve call.
type Config struct {
	// Start is the original index of the item the expansion starts from.
	Start int

	// Band gates which similarity edges enter the graph.
	Band frontier.Band

	// Target is the visitation position to route to; any negative value
	// selects the last visited node.
	Target int

	// Logger receives per-stage debug events.
	Logger zerolog.Logger
}

// DefaultConfig starts at item 0, uses frontier.DefaultBand and targets the
// last visited node.
func DefaultConfig() Config {
	return Config{
		Start:  0,
		Band:   frontier.DefaultBand,
		Target: LastNode,
		Logger: zerolog.Nop(),
	}
}

// Route is the outcome of a planning run.
type Route struct {
	// Order maps visitation positions to original item indices. For Solve
	// it is the identity.
	Order []int

	// Adjacency is the N×N matrix the solver ran on.
	Adjacency *matrix.Dense

	// Result is the full solver output for every node.
	Result *dijkstra.Result

	// Target is the resolved target position.
	Target int

	// Path lists positions from the start to Target; nil when unreachable.
	Path []int

	// Distance is the shortest distance to Target, +Inf when unreachable.
	Distance float64
}

// Plan runs the full pipeline over sim.
func Plan(ctx context.Context, sim *similarity.Matrix, cfg Config) (*Route, error) {
	if sim == nil {
		return nil, ErrNilSimilarity
	}
	log := cfg.Logger

	began := time.Now()
	fr, err := frontier.Build(sim.Costs(),
		frontier.WithContext(ctx),
		frontier.WithStart(cfg.Start),
		frontier.WithBand(cfg.Band),
		frontier.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("route: expand: %w", err)
	}
	log.Debug().
		Int("items", sim.Len()).
		Int("visited", fr.Len()).
		Int("rounds", fr.Rounds).
		Dur("took", time.Since(began)).
		Msg("frontier built")

	adj, err := adjacency.Normalize(fr.Rows)
	if err != nil {
		return nil, fmt.Errorf("route: normalize: %w", err)
	}
	log.Debug().
		Int("nodes", adj.Rows()).
		Int("edges", adjacency.Edges(adj)).
		Msg("adjacency normalized")

	r, err := solve(adj, cfg.Target, log)
	if err != nil {
		return nil, err
	}
	r.Order = fr.Order

	return r, nil
}

// Solve runs only the shortest path stage on adj, from position 0 to
// target (negative for the last node).
func Solve(adj matrix.Matrix, target int) (*Route, error) {
	return SolveWithLogger(adj, target, zerolog.Nop())
}

// SolveWithLogger is Solve with debug events routed to log.
func SolveWithLogger(adj matrix.Matrix, target int, log zerolog.Logger) (*Route, error) {
	if err := matrix.ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("route: %w", dijkstra.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("route: %w: %w", dijkstra.ErrNonSquare, err)
	}
	d, err := adjacency.Normalize(rowsOf(adj))
	if err != nil {
		return nil, fmt.Errorf("route: normalize: %w", err)
	}

	r, err := solve(d, target, log)
	if err != nil {
		return nil, err
	}
	r.Order = make([]int, d.Rows())
	for i := range r.Order {
		r.Order[i] = i
	}

	return r, nil
}

func rowsOf(m matrix.Matrix) [][]float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Rows2D()
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			rows[i][j], _ = m.At(i, j)
		}
	}

	return rows
}

// solve runs the solver from position 0 and resolves the target path.
func solve(adj *matrix.Dense, target int, log zerolog.Logger) (*Route, error) {
	n := adj.Rows()
	if target < 0 {
		target = n - 1
	}
	if target >= n {
		return nil, fmt.Errorf("route: %w: %d with N=%d", dijkstra.ErrTargetOutOfRange, target, n)
	}

	began := time.Now()
	res, err := dijkstra.Dijkstra(adj, dijkstra.Source(0))
	if err != nil {
		return nil, fmt.Errorf("route: solve: %w", err)
	}

	r := &Route{
		Adjacency: adj,
		Result:    res,
		Target:    target,
		Distance:  res.Dist[target],
	}
	path, err := res.PathTo(target)
	switch {
	case err == nil:
		r.Path = path
	case errors.Is(err, dijkstra.ErrUnreachable):
		r.Distance = math.Inf(1)
	default:
		return nil, fmt.Errorf("route: path: %w", err)
	}

	log.Debug().
		Int("target", target).
		Bool("reachable", r.Reachable()).
		Float64("distance", r.Distance).
		Dur("took", time.Since(began)).
		Msg("shortest path solved")

	return r, nil
}

// Reachable reports whether a path to Target exists.
func (r *Route) Reachable() bool { return r.Path != nil }

// Label renders the path target first with 1-based labels, e.g.
// "9 <- 8 <- 5 <- 3 <- 1". It is empty when Target is unreachable.
func (r *Route) Label() string {
	if !r.Reachable() {
		return ""
	}

	return dijkstra.FormatPath(r.Path)
}

// Items maps the path back to original item indices, start first.
func (r *Route) Items() []int {
	if !r.Reachable() {
		return nil
	}
	items := make([]int, len(r.Path))
	for i, p := range r.Path {
		items[i] = r.Order[p]
	}

	return items
}

// Report writes the human-readable route:
//
//	-----path-----
//	9 <- 8 <- 5 <- 3 <- 1
//	-----distance-----
//	1.8
//
// Both lines read "unreachable" when there is no path.
func (r *Route) Report(w io.Writer) error {
	label, dist := "unreachable", "unreachable"
	if r.Reachable() {
		label = r.Label()
		dist = strconv.FormatFloat(r.Distance, 'g', -1, 64)
	}
	_, err := fmt.Fprintf(w, "-----path-----\n%s\n-----distance-----\n%s\n", label, dist)

	return err
}
