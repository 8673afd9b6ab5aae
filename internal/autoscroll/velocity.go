package autoscroll

import "math"

const (
	// DefaultDeadBand is the pointer displacement, in pixels, below which no
	// scrolling happens.
	DefaultDeadBand = 10.0

	// DefaultDivisor scales displacement*milliseconds down to pixels.
	DefaultDivisor = 200.0
)

// VelocityModel converts pointer displacement into a scroll request.
// Speed grows linearly with the distance past the dead-band and with the
// time since the previous sample, so it does not depend on timer jitter.
type VelocityModel struct {
	DeadBand float64
	Divisor  float64
}

// DefaultVelocityModel returns the model with DefaultDeadBand and DefaultDivisor.
func DefaultVelocityModel() VelocityModel {
	return VelocityModel{
		DeadBand: DefaultDeadBand,
		Divisor:  DefaultDivisor,
	}
}

// PixelsToScroll returns the signed number of pixels to scroll on one axis.
// Deltas within the dead-band, and non-positive elapsed times, yield 0.
// There is no upper bound, but a request that is not a finite number (NaN
// inputs, or a divisor so small the result overflows) yields 0 as well.
func (m VelocityModel) PixelsToScroll(axisDelta, elapsedMs float64) float64 {
	magnitude := math.Abs(axisDelta)
	if !(magnitude > m.DeadBand) || !(elapsedMs > 0) || !(m.Divisor > 0) {
		return 0
	}

	pixels := (magnitude - m.DeadBand) * elapsedMs / m.Divisor
	if math.IsNaN(pixels) || math.IsInf(pixels, 0) {
		return 0
	}
	if axisDelta < 0 {
		return -pixels
	}
	return pixels
}

// Outside reports whether axisDelta lies beyond the dead-band.
func (m VelocityModel) Outside(axisDelta float64) bool {
	return math.Abs(axisDelta) > m.DeadBand
}
