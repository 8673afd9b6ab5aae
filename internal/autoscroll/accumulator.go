package autoscroll

import "math"

// Accumulator carries the fractional part of scroll requests on one axis.
// After every Apply the remainder lies strictly inside (-1, 1), so the sum
// of committed pixels never drifts more than one pixel from the sum of
// requests.
type Accumulator struct {
	remainder float64
}

// Apply adds a request and returns the whole pixels to scroll now.
// A zero request clears the remainder: returning to the dead-band must not
// leave debt that resumes scrolling later. A request that is not a finite
// number counts as zero.
func (a *Accumulator) Apply(instancePixels float64) int {
	if instancePixels == 0 || math.IsNaN(instancePixels) || math.IsInf(instancePixels, 0) {
		a.remainder = 0
		return 0
	}

	a.remainder += instancePixels
	committed := math.Trunc(a.remainder)
	a.remainder -= committed
	return int(committed)
}

// Remainder returns the carried fractional pixels.
func (a *Accumulator) Remainder() float64 {
	return a.remainder
}

// Reset clears the remainder.
func (a *Accumulator) Reset() {
	a.remainder = 0
}
