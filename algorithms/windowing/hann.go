package windowing

import "math"

// Hann is a symmetric Hann window of a fixed size
type Hann struct {
	coefficients []float64
}

// NewHann precomputes a symmetric Hann window of size samples
func NewHann(size int) *Hann {
	h := &Hann{coefficients: make([]float64, max(size, 0))}
	if size == 1 {
		h.coefficients[0] = 1
		return h
	}
	for i := range h.coefficients {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}
	return h
}

// Apply returns a windowed copy of signal, or nil when the lengths differ
func (h *Hann) Apply(signal []float64) []float64 {
	if len(signal) != len(h.coefficients) {
		return nil
	}

	windowed := make([]float64, len(signal))
	for i, s := range signal {
		windowed[i] = s * h.coefficients[i]
	}
	return windowed
}

// Size returns the window length
func (h *Hann) Size() int {
	return len(h.coefficients)
}
