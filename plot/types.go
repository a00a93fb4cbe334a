// Package plot: point/bounds types, display constants, sentinel errors.

package plot

import "errors"

// Sentinel errors for sampling parameters.
var (
	// ErrSampleCount indicates a curve sampling request with n < MinCurveSamples.
	ErrSampleCount = errors.New("plot: curve sampling needs at least two points")
)

// Display constants carried over from the reference viewer.
const (
	// DefaultXMin is the left edge of the viewport before any fit or load.
	DefaultXMin = -6.0
	// DefaultXMax is the right edge of the viewport before any fit or load.
	DefaultXMax = 6.0
	// DefaultCurveSamples is the sample count used when drawing a curve.
	DefaultCurveSamples = 300
	// MinCurveSamples is the smallest n CurvePoints accepts; below it the
	// spacing formula divides by zero.
	MinCurveSamples = 2
	// FitMarginSigmas is how many widest-σ of margin AutoFit adds on each side.
	FitMarginSigmas = 4.0
	// FitHeadroom scales the fitted peak so the curve top clears the frame.
	FitHeadroom = 1.1
)

// Point is one sampled (x, y) pair.
type Point struct {
	X float64
	Y float64
}

// Bounds is a display window: x and y extents, YMin always 0 for PDF plots.
type Bounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}
