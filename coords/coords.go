package coords

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateRect marks a target rectangle with non-positive width or
// height. It is a precondition violation, never silently approximated.
var ErrDegenerateRect = errors.New("degenerate target rect")

// Matrix is a PDF affine transform in [a b c d e f] order.
type Matrix [6]float64

func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

func Translate(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

func Scale(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

// Multiply returns m x o (m applied first).
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

type Point struct{ X, Y float64 }

func (m Matrix) Apply(p Point) Point {
	return Point{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
}

// Rect is a page rectangle with (X1, Y1) the lower-left corner.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func (r Rect) Width() float64  { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Transform projects canonical-space content into a target rectangle: a
// single uniform scale followed by a translation. It never stretches the
// two axes independently.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func (t Transform) Matrix() Matrix {
	return Matrix{t.Scale, 0, 0, t.Scale, t.OffsetX, t.OffsetY}
}

// FitRect computes the largest uniform scale that fits a canonW x canonH box
// inside target without clipping, centering the scaled content on both axes.
// A target with non-positive width or height is a precondition violation.
func FitRect(target Rect, canonW, canonH float64) (Transform, error) {
	w := target.Width()
	h := target.Height()
	if w <= 0 || h <= 0 {
		return Transform{}, fmt.Errorf("%w [%g %g %g %g]", ErrDegenerateRect, target.X1, target.Y1, target.X2, target.Y2)
	}
	if canonW <= 0 || canonH <= 0 {
		return Transform{}, fmt.Errorf("invalid canonical size %gx%g", canonW, canonH)
	}
	scale := math.Min(w/canonW, h/canonH)
	contentW := canonW * scale
	contentH := canonH * scale
	return Transform{
		Scale:   scale,
		OffsetX: target.X1 + (w-contentW)/2,
		OffsetY: target.Y1 + (h-contentH)/2,
	}, nil
}
