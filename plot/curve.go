// Package plot: curve and fill-polygon sampling.
//
// Both samplers are pure and deterministic: identical inputs produce
// bit-identical point sequences.

package plot

import (
	"fmt"

	"github.com/lowfold/gaussviz/gauss"
)

// CurvePoints samples the PDF at n evenly spaced x positions across
// [xMin, xMax], both endpoints inclusive: xᵢ = xMin + (xMax−xMin)·i/(n−1).
//
// Returns ErrSampleCount if n < MinCurveSamples and
// gauss.ErrNonPositiveSigma if the distribution is invalid.
// Complexity: O(n).
func CurvePoints(d gauss.Distribution, xMin, xMax float64, n int) ([]Point, error) {
	if n < MinCurveSamples {
		return nil, fmt.Errorf("CurvePoints: n=%d: %w", n, ErrSampleCount)
	}

	pts := make([]Point, n)
	span := xMax - xMin
	for i := 0; i < n; i++ {
		x := xMin + span*float64(i)/float64(n-1)
		y, err := d.Evaluate(x)
		if err != nil {
			return nil, err
		}
		pts[i] = Point{X: x, Y: y}
	}

	return pts, nil
}

// FillPolygon returns the closed area-under-curve outline: a corner vertex
// at (xMin, 0), n interior curve vertices, and a corner at (xMax, 0) —
// always n+2 vertices in total. Interior vertices are spaced by
// xᵢ = xMin + (xMax−xMin)·i/(n+1) for i = 1..n, strictly inside the range,
// so they never duplicate a corner's x-coordinate; with n = 1 the single
// interior vertex sits at the midpoint. The renderer closes the polygon
// implicitly from the last vertex back to the first.
//
// Returns ErrSampleCount if n < 0 and gauss.ErrNonPositiveSigma if the
// distribution is invalid.
// Complexity: O(n).
func FillPolygon(d gauss.Distribution, xMin, xMax float64, n int) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("FillPolygon: n=%d: %w", n, ErrSampleCount)
	}
	if _, err := d.Evaluate(xMin); err != nil {
		return nil, err
	}

	pts := make([]Point, 0, n+2)
	pts = append(pts, Point{X: xMin, Y: 0})

	span := xMax - xMin
	switch {
	case n == 1:
		x := (xMin + xMax) / 2.0
		y, err := d.Evaluate(x)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: x, Y: y})
	case n > 1:
		for i := 1; i <= n; i++ {
			x := xMin + span*float64(i)/float64(n+1)
			y, err := d.Evaluate(x)
			if err != nil {
				return nil, err
			}
			pts = append(pts, Point{X: x, Y: y})
		}
	}

	pts = append(pts, Point{X: xMax, Y: 0})

	return pts, nil
}

// Markers returns the seven σ-spaced marker x-positions for d, for drawing
// dashed vertical guides; index 3 is the mean.
// Complexity: O(1).
func Markers(d gauss.Distribution) [7]float64 {
	return d.StdMarkers()
}
