// Package geometry computes fret x-coordinates for single-scale and
// multiscale (fanned fret) fretboards.
package geometry

import (
	"math"

	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

// MinWidth replaces unusable drawing widths
const MinWidth = 100.0

// semitoneRatio is the twelfth root of two
var semitoneRatio = math.Pow(2, 1.0/12.0)

// sanitizeWidth substitutes MinWidth for zero, negative, NaN or infinite widths
func sanitizeWidth(width float64) float64 {
	if common.IsUsable(width) {
		return width
	}
	logging.Warn("unusable fretboard width, using minimum", logging.Fields{
		"width":     width,
		"min_width": MinWidth,
	})
	return MinWidth
}

// rawFretPositions returns the distance from the nut to frets 0..fretCount on
// a string of the given scale length. Each fret leaves 1/2^(1/12) of the
// remaining string.
func rawFretPositions(scaleLength float64, fretCount int) []float64 {
	positions := make([]float64, fretCount+1)
	remaining := scaleLength
	for i := 1; i <= fretCount; i++ {
		remaining /= semitoneRatio
		positions[i] = scaleLength - remaining
	}
	return positions
}

// FretPositions returns x-coordinates for frets 0..fretCount on a single
// scale length board, with the nut at 0 and the last fret at totalWidth.
func FretPositions(totalWidth float64, fretCount int) []float64 {
	totalWidth = sanitizeWidth(totalWidth)
	if fretCount <= 0 {
		return []float64{0}
	}

	positions := rawFretPositions(1, fretCount)
	common.Rescale([][]float64{positions}, 0, positions[fretCount], totalWidth)
	return positions
}
