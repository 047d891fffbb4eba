package geometry

import (
	"github.com/RyanBlaney/sonido-escalas/algorithms/common"
	"github.com/RyanBlaney/sonido-escalas/logging"
)

// Common multiscale defaults, in inches
const (
	DefaultTrebleLength = 25.5
	DefaultBassLength   = 27.0
)

// MaxScaleRatio bounds how much longer (or shorter) the bass string may be
// than the treble string
const MaxScaleRatio = 2.0

// ScaleLengths interpolates each string's scale length linearly from
// trebleLength (string 0) to bassLength (last string)
func ScaleLengths(stringCount int, trebleLength, bassLength float64) []float64 {
	lengths := make([]float64, stringCount)
	for s := range lengths {
		ratio := 0.0
		if stringCount > 1 {
			ratio = float64(s) / float64(stringCount-1)
		}
		lengths[s] = common.Lerp(trebleLength, bassLength, ratio)
	}
	return lengths
}

// MultiscaleFretPositions returns per-string fret x-coordinates for a fanned
// fret board. Every string is shifted so that perpendicularFret sits at the
// same x on all strings, then all strings share one rescale so that the
// smallest coordinate is 0 and the largest is totalWidth.
func MultiscaleFretPositions(totalWidth float64, fretCount, stringCount int, trebleLength, bassLength float64, perpendicularFret int) [][]float64 {
	totalWidth = sanitizeWidth(totalWidth)
	if stringCount < 1 {
		logging.Warn("multiscale board without strings, using one", logging.Fields{"string_count": stringCount})
		stringCount = 1
	}
	if fretCount < 0 {
		fretCount = 0
	}
	if !common.IsUsable(trebleLength) {
		trebleLength = DefaultTrebleLength
	}
	if !common.IsUsable(bassLength) {
		bassLength = DefaultBassLength
	}
	perpendicularFret = common.ClampInt(perpendicularFret, 0, fretCount)

	// the output is rescaled to totalWidth, so only the bass/treble ratio matters
	ratio := bassLength / trebleLength
	if clamped := common.Clamp(ratio, 1/MaxScaleRatio, MaxScaleRatio); clamped != ratio {
		logging.Warn("multiscale length ratio out of range, clamping", logging.Fields{
			"treble_length": trebleLength,
			"bass_length":   bassLength,
			"ratio":         clamped,
		})
		ratio = clamped
	}

	lengths := ScaleLengths(stringCount, 1, ratio)
	positions := make([][]float64, stringCount)
	anchors := make([]float64, stringCount)
	for s, length := range lengths {
		positions[s] = rawFretPositions(length, fretCount)
		anchors[s] = positions[s][perpendicularFret]
	}

	target := common.Mean(anchors)
	for s := range positions {
		offset := target - positions[s][perpendicularFret]
		for f := range positions[s] {
			positions[s][f] += offset
		}
	}

	lo, hi, _ := common.Bounds(positions)
	common.Rescale(positions, lo, hi, totalWidth)

	return positions
}
