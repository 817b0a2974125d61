// SPDX-License-Identifier: MIT

package hmm

// Tensor3 holds the transition posterior ξ as an N×N×D block, D = T-1.
// Storage is time-major: slab t is the contiguous N×N row-major block
// data[t*N*N : (t+1)*N*N], so per-step normalization touches one slice.
type Tensor3 struct {
	n, depth int
	data     []float64
}

// NewTensor3 allocates a zero n×n×depth tensor. depth may be 0 (T == 1).
// Errors: ErrDimensionMismatch when n <= 0 or depth < 0.
func NewTensor3(n, depth int) (*Tensor3, error) {
	if n <= 0 || depth < 0 {
		return nil, detailErrorf(opNewTensor3, ErrDimensionMismatch, "n=%d depth=%d", n, depth)
	}

	return &Tensor3{n: n, depth: depth, data: make([]float64, n*n*depth)}, nil
}

// States returns N.
func (x *Tensor3) States() int { return x.n }

// Depth returns the number of time slabs (T-1).
func (x *Tensor3) Depth() int { return x.depth }

// At returns ξ[i][j][t].
func (x *Tensor3) At(i, j, t int) (float64, error) {
	if i < 0 || i >= x.n || j < 0 || j >= x.n || t < 0 || t >= x.depth {
		return 0, detailErrorf(opTensor3At, ErrDimensionMismatch, "(%d,%d,%d)", i, j, t)
	}

	return x.data[x.offset(i, j, t)], nil
}

// Slice returns a copy of slab t as an N×N [][]float64.
func (x *Tensor3) Slice(t int) ([][]float64, error) {
	if t < 0 || t >= x.depth {
		return nil, detailErrorf(opTensor3Slice, ErrDimensionMismatch, "t=%d depth=%d", t, x.depth)
	}
	out := make([][]float64, x.n)
	slab := x.slab(t)
	for i := range out {
		out[i] = append([]float64(nil), slab[i*x.n:(i+1)*x.n]...)
	}

	return out, nil
}

func (x *Tensor3) offset(i, j, t int) int { return t*x.n*x.n + i*x.n + j }

// slab aliases the backing buffer for time t.
func (x *Tensor3) slab(t int) []float64 {
	sz := x.n * x.n
	return x.data[t*sz : (t+1)*sz : (t+1)*sz]
}
