package similarity

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simroute/matrix"
)

// Cosine computes item-item cosine similarity from an item×user rating
// matrix: sim(a, b) = a·b / (|a| |b|), 0 when either row has no ratings.
// Ratings must be finite and non-negative; the diagonal of the result is 0.
//
// Rows are scheduled on an errgroup limited to Options.Workers goroutines.
// Task i owns the cells (i, j) and (j, i) for every j > i, so no two tasks
// ever write the same cell and the result does not depend on scheduling.
//
// Complexity: O(items² · users) time, O(items²) space.
func Cosine(ctx context.Context, ratings matrix.Matrix, opts ...Option) (*Matrix, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := matrix.ValidateNotNil(ratings); err != nil {
		return nil, invalidf(err)
	}
	if err := matrix.ValidateFinite(ratings); err != nil {
		return nil, invalidf(err)
	}
	if err := matrix.ValidateNonNegative(ratings); err != nil {
		return nil, invalidf(err)
	}

	rows, err := denseRows(ratings)
	if err != nil {
		return nil, err
	}
	n := len(rows)

	norms := make([]float64, n)
	for i, r := range rows {
		norms[i] = math.Sqrt(dot(r, r))
	}

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if norms[i] == 0 {
				return nil
			}
			var s float64
			for j := i + 1; j < n; j++ {
				if norms[j] == 0 {
					continue
				}
				s = dot(rows[i], rows[j]) / (norms[i] * norms[j])
				out[i][j] = s
				out[j][i] = s
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return New(out, opts...)
}

// denseRows copies ratings into row slices so the kernel can index directly.
func denseRows(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Rows2D(), nil
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func dot(a, b []float64) float64 {
	var s float64
	for k := range a {
		s += a[k] * b[k]
	}

	return s
}
