package motion

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidRange is returned when a Range's breakpoints cannot describe a
// piecewise-linear function.
var ErrInvalidRange = errors.New("invalid range")

// Range is a piecewise-linear mapping from input breakpoints to output values.
// Inputs outside the breakpoints are clamped to the first or last output.
type Range struct {
	In  []float64 `json:"in"`
	Out []float64 `json:"out"`
}

// NewRange validates and returns a Range. Breakpoints must be strictly
// increasing, there must be at least two, and In and Out must be the same length.
func NewRange(in, out []float64) (Range, error) {
	if len(in) < 2 {
		return Range{}, fmt.Errorf("%w: need at least two breakpoints, got %d", ErrInvalidRange, len(in))
	}
	if len(in) != len(out) {
		return Range{}, fmt.Errorf("%w: %d breakpoints but %d outputs", ErrInvalidRange, len(in), len(out))
	}
	for i := 1; i < len(in); i++ {
		if in[i] <= in[i-1] {
			return Range{}, fmt.Errorf("%w: breakpoint %d (%g) not greater than %g", ErrInvalidRange, i, in[i], in[i-1])
		}
	}

	return Range{In: append([]float64(nil), in...), Out: append([]float64(nil), out...)}, nil
}

// MustRange is NewRange for package-level presets; it panics on invalid input.
func MustRange(in, out []float64) Range {
	r, err := NewRange(in, out)
	if err != nil {
		panic(err)
	}
	return r
}

// At evaluates the mapping at x. NaN evaluates as the first breakpoint. A
// Range built without NewRange whose Out does not match In evaluates to its
// first output everywhere.
func (r Range) At(x float64) float64 {
	n := len(r.In)
	if n == 0 || len(r.Out) == 0 {
		return 0
	}
	if len(r.Out) != n {
		return r.Out[0]
	}
	if math.IsNaN(x) || x <= r.In[0] {
		return r.Out[0]
	}
	if x >= r.In[n-1] {
		return r.Out[n-1]
	}

	// First breakpoint strictly greater than x; x lies in [In[i-1], In[i]).
	i := sort.Search(n, func(k int) bool { return r.In[k] > x })
	if i == 0 || i == n {
		// Only reachable with unsorted or NaN breakpoints.
		return r.Out[0]
	}
	x0, x1 := r.In[i-1], r.In[i]
	y0, y1 := r.Out[i-1], r.Out[i]
	t := (x - x0) / (x1 - x0)

	return y0 + t*(y1-y0)
}
