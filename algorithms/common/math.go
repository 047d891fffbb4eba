package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Numeric helpers shared by the theory, geometry and pitch packages

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Mod returns x modulo m in the range [0, m), for any sign of x.
func Mod(x, m int) int {
	if m <= 0 {
		return 0
	}
	return ((x % m) + m) % m
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(x, m int) int {
	q := x / m
	if (x%m != 0) && ((x < 0) != (m < 0)) {
		q--
	}
	return q
}

// Clamp limits value to [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt limits value to [min, max]
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// IsUsable reports whether v is a finite, strictly positive number
func IsUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Bounds returns the minimum and maximum over every row of a ragged matrix.
// ok is false when there are no values at all.
func Bounds(rows [][]float64) (lo, hi float64, ok bool) {
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		rowMin, rowMax := floats.Min(row), floats.Max(row)
		if !ok {
			lo, hi, ok = rowMin, rowMax, true
			continue
		}
		lo = math.Min(lo, rowMin)
		hi = math.Max(hi, rowMax)
	}
	return lo, hi, ok
}

// Rescale maps every value of rows linearly so that lo lands on 0 and hi on
// width, in place. A zero span leaves the rows shifted to 0.
func Rescale(rows [][]float64, lo, hi, width float64) {
	span := hi - lo
	for _, row := range rows {
		floats.AddConst(-lo, row)
		if span > 1e-12 {
			floats.Scale(width/span, row)
		}
	}
}

// ParabolicPeak refines an integer peak index with a three point parabola
func ParabolicPeak(data []float64, peakIdx int) float64 {
	if peakIdx <= 0 || peakIdx >= len(data)-1 {
		return float64(peakIdx)
	}

	y1 := data[peakIdx-1]
	y2 := data[peakIdx]
	y3 := data[peakIdx+1]

	a := (y1 - 2*y2 + y3) / 2
	b := (y3 - y1) / 2

	if a == 0 {
		return float64(peakIdx)
	}

	return float64(peakIdx) - b/(2*a)
}
