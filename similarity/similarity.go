package similarity

import (
	"fmt"

	"github.com/katalvlaran/simroute/matrix"
)

// Matrix is an immutable square similarity matrix with a zero diagonal.
type Matrix struct {
	data *matrix.Dense
	n    int
}

// New validates data and copies it into a Matrix.
//
// Preconditions and validation (in order):
//  1. data must be a non-empty rectangle of finite values.
//  2. data must be square.
//  3. every entry must be non-negative.
//  4. with WithStrictDiagonal the diagonal must already be zero.
//
// Any failure is reported as ErrInvalidInput before a graph is ever built.
func New(data [][]float64, opts ...Option) (*Matrix, error) {
	d, err := matrix.NewDenseFrom(data)
	if err != nil {
		return nil, invalidf(err)
	}

	return fromDense(d, opts...)
}

// FromMatrix validates m and copies it into a Matrix. m is not retained.
func FromMatrix(m matrix.Matrix, opts ...Option) (*Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, invalidf(err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, invalidf(err)
	}
	d, ok := m.Clone().(*matrix.Dense)
	if !ok {
		var err error
		if d, err = copyDense(m); err != nil {
			return nil, invalidf(err)
		}
	}

	return fromDense(d, opts...)
}

// fromDense takes ownership of d.
func fromDense(d *matrix.Dense, opts ...Option) (*Matrix, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := matrix.ValidateSquare(d); err != nil {
		return nil, invalidf(err)
	}
	if err := matrix.ValidateNonNegative(d); err != nil {
		return nil, invalidf(err)
	}
	if o.StrictDiagonal {
		if err := matrix.ValidateZeroDiagonal(d); err != nil {
			return nil, invalidf(err)
		}
	}

	// Self-similarity is excluded: zero the diagonal on our private copy.
	n := d.Rows()
	for i := 0; i < n; i++ {
		if err := d.Set(i, i, 0); err != nil {
			return nil, err
		}
	}

	return &Matrix{data: d, n: n}, nil
}

func copyDense(m matrix.Matrix) (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Len returns N.
func (s *Matrix) Len() int { return s.n }

// At returns the similarity of item i to item j.
func (s *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("%w: (%d,%d) with N=%d", ErrIndexOutOfRange, i, j, s.n)
	}

	return s.data.At(i, j)
}

// Dense returns a copy of the underlying storage.
func (s *Matrix) Dense() *matrix.Dense {
	return s.data.Clone().(*matrix.Dense)
}

// CostRow returns the cost-transformed row i.
// Complexity: O(N).
func (s *Matrix) CostRow(i int) (CostRow, error) {
	if i < 0 || i >= s.n {
		return CostRow{}, fmt.Errorf("%w: row %d with N=%d", ErrIndexOutOfRange, i, s.n)
	}
	row, err := s.data.Row(i)
	if err != nil {
		return CostRow{}, err
	}

	cr := CostRow{
		cols:  make([]int, 0, len(row)),
		costs: make(map[int]float64, len(row)),
	}
	for j, v := range row {
		if v == 0 {
			continue // no edge; 1/0 must never happen
		}
		cr.cols = append(cr.cols, j)
		cr.costs[j] = 1 / v
	}

	return cr, nil
}

// Costs returns the cost transform of every row, indexed by original row.
// Complexity: O(N²).
func (s *Matrix) Costs() []CostRow {
	out := make([]CostRow, s.n)
	for i := 0; i < s.n; i++ {
		// i is always in range here.
		out[i], _ = s.CostRow(i)
	}

	return out
}
