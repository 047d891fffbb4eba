package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MagnitudeSpectrum returns |X[k]| for k in 0..len(x)/2 using mjibson/go-dsp,
// which handles non power of two sizes.
func MagnitudeSpectrum(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(x)
	magnitudes := make([]float64, len(x)/2+1)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(spectrum[i])
	}
	return magnitudes
}

// BinFrequency returns the width of one FFT bin in Hz
func BinFrequency(sampleRate, size int) float64 {
	if size <= 0 {
		return 0
	}
	return float64(sampleRate) / float64(size)
}
