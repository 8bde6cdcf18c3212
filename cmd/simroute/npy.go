package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sbinet/npyio"

	"github.com/katalvlaran/simroute/matrix"
)

// errNotMatrix is returned for arrays that are not 2-D.
var errNotMatrix = errors.New("simroute: .npy array is not 2-D")

// loadNPY reads a 2-D float64 or float32 array into a Dense. Fortran-ordered
// arrays are transposed into row-major order.
func loadNPY(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("simroute: read %s: %w", path, err)
	}
	shape := r.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: %s has shape %v", errNotMatrix, path, shape)
	}
	rows, cols := shape[0], shape[1]

	var data []float64
	switch r.Header.Descr.Type {
	case "<f8", "f8", "float64":
		if err = r.Read(&data); err != nil {
			return nil, fmt.Errorf("simroute: decode %s: %w", path, err)
		}
	case "<f4", "f4", "float32":
		var f32 []float32
		if err = r.Read(&f32); err != nil {
			return nil, fmt.Errorf("simroute: decode %s: %w", path, err)
		}
		data = make([]float64, len(f32))
		for i, v := range f32 {
			data[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("simroute: %s: unsupported dtype %q", path, r.Header.Descr.Type)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("simroute: %s: %d values for shape %v", path, len(data), shape)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("simroute: %s: %w", path, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := data[i*cols+j]
			if r.Header.Descr.Fortran {
				v = data[j*rows+i]
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("simroute: %s: %w", path, err)
			}
		}
	}

	return m, nil
}
