package pitch

import (
	"math"

	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
	"github.com/RyanBlaney/sonido-escalas/algorithms/spectral"
	"github.com/RyanBlaney/sonido-escalas/algorithms/windowing"
)

// minimum frequency considered when looking for the spectral peak
const minEstimateHz = 20.0

// EstimateFrequency returns the dominant frequency of a mono buffer in Hz, or
// 0 when the buffer is too short or silent. A Hann window is applied before
// the FFT and the magnitude peak is refined by parabolic interpolation.
func EstimateFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 4 || sampleRate <= 0 {
		return 0
	}

	windowed := windowing.NewHann(len(samples)).Apply(samples)
	magnitudes := spectral.MagnitudeSpectrum(windowed)

	binHz := spectral.BinFrequency(sampleRate, len(samples))
	start := max(1, int(math.Ceil(minEstimateHz/binHz)))

	peak := -1
	best := 1e-9
	for i := start; i < len(magnitudes); i++ {
		if magnitudes[i] > best {
			best = magnitudes[i]
			peak = i
		}
	}
	if peak < 0 {
		return 0
	}

	return common.ParabolicPeak(magnitudes, peak) * binHz
}

// IdentifyNote estimates the dominant frequency of samples and returns the nearest note
func IdentifyNote(samples []float64, sampleRate int) (Match, bool) {
	return NearestNote(EstimateFrequency(samples, sampleRate))
}
