package vec

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is a continuous position in N-space.
type Point []float64

// Cell identifies the unit hypercube [c_i, c_i+1) on every axis i.
type Cell []int

// Sign returns +1, -1 or 0 according to the sign of x.
// Only an exact zero maps to 0.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Dim returns the dimensionality of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Sub returns p - q. Both points must share the same dimension.
func (p Point) Sub(q Point) Point {
	out := make(Point, len(p))
	floats.SubTo(out, p, q)

	return out
}

// Finite reports whether every coordinate of p is neither NaN nor ±Inf.
func (p Point) Finite() bool {
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Norm returns the Euclidean length ||p||₂ as the square root of the plain
// sum of squares. floats.Norm rescales to avoid overflow and can land a few
// ULP away, which shifts crossing positions.
func Norm(p Point) float64 {
	if len(p) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(p, p))
}

// ApproxEqual reports whether a and b have the same dimension and every pair
// of coordinates agrees within tol, absolutely or relatively.
func ApproxEqual(a, b Point, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	return floats.EqualApprox(a, b, tol)
}

// IsIntegral reports whether x lies within eps of an integer.
func IsIntegral(x, eps float64) bool {
	return math.Abs(x-math.Round(x)) < eps
}

// FloorCell maps p to the cell containing p + bias on every axis.
// A small positive bias pulls points lying on a boundary into the upper cell.
func FloorCell(p Point, bias float64) Cell {
	out := make(Cell, len(p))
	for i, x := range p {
		out[i] = int(math.Floor(x + bias))
	}

	return out
}

// DirectedCell maps p onto the lattice corner facing the direction of travel:
// floor(p_i) where dir_i >= 0 and ceil(p_i) where dir_i < 0.
func DirectedCell(p Point, dir []float64) Cell {
	out := make(Cell, len(p))
	for i, x := range p {
		if dir[i] >= 0 {
			out[i] = int(math.Floor(x))
		} else {
			out[i] = int(math.Ceil(x))
		}
	}

	return out
}

// Dim returns the dimensionality of c.
func (c Cell) Dim() int { return len(c) }

// Clone returns an independent copy of c.
func (c Cell) Clone() Cell {
	if c == nil {
		return nil
	}
	out := make(Cell, len(c))
	copy(out, c)

	return out
}

// Add returns c + o component-wise.
func (c Cell) Add(o Cell) Cell {
	out := make(Cell, len(c))
	for i := range c {
		out[i] = c[i] + o[i]
	}

	return out
}

// Equal reports whether c and o name the same cell.
func (c Cell) Equal(o Cell) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// Compare orders cells lexicographically, axis 0 most significant.
// Shorter cells order before longer ones sharing the same prefix.
func (c Cell) Compare(o Cell) int {
	n := min(len(c), len(o))
	for i := 0; i < n; i++ {
		switch {
		case c[i] < o[i]:
			return -1
		case c[i] > o[i]:
			return 1
		}
	}
	switch {
	case len(c) < len(o):
		return -1
	case len(c) > len(o):
		return 1
	}

	return 0
}

// Point returns the minimum corner of c as a Point.
func (c Cell) Point() Point {
	out := make(Point, len(c))
	for i, v := range c {
		out[i] = float64(v)
	}

	return out
}

// ChebyshevDistance returns max_i |c_i - o_i|.
func (c Cell) ChebyshevDistance(o Cell) int {
	d := 0
	for i := range c {
		diff := c[i] - o[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > d {
			d = diff
		}
	}

	return d
}

// Key encodes c as a compact string usable as a map key.
func (c Cell) Key() string {
	buf := make([]byte, 0, len(c)*4)
	for i, v := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}

// String renders c as "(x,y,...)".
func (c Cell) String() string {
	return "(" + c.Key() + ")"
}

// String renders p as "(x,y,...)" with the shortest exact representation.
func (p Point) String() string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ",") + ")"
}
