package postprocess

import (
	"math"

	"riglogger/dataformats"
)

// Epsilon derives the point-dropping tolerance from the vertical spread of
// the series, so flat and steep curves simplify comparably.
func Epsilon(points []dataformats.Measurement, ratio float64) float64 {
	low, high := math.Inf(1), math.Inf(-1)
	for _, point := range points {
		low = math.Min(low, point.Shrinkage)
		high = math.Max(high, point.Shrinkage)
	}
	if low > high {
		low, high = 0, 0
	}
	return ratio*(high-low) + 1e-9
}

// Simplify is the Ramer-Douglas-Peucker reduction of the series.
func Simplify(points []dataformats.Measurement, epsilon float64) []dataformats.Measurement {
	if len(points) < 3 {
		return points
	}
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true
	simplifyRange(points, 0, len(points)-1, epsilon, keep)

	var kept []dataformats.Measurement
	for i, point := range points {
		if keep[i] {
			kept = append(kept, point)
		}
	}
	return kept
}

func simplifyRange(points []dataformats.Measurement, first, last int, epsilon float64, keep []bool) {
	if last <= first+1 {
		return
	}
	index, distance := first, 0.0
	for i := first + 1; i < last; i++ {
		if d := perpendicular(points[first], points[last], points[i]); d > distance {
			index, distance = i, d
		}
	}
	if distance <= epsilon {
		return
	}
	keep[index] = true
	simplifyRange(points, first, index, epsilon, keep)
	simplifyRange(points, index, last, epsilon, keep)
}

// perpendicular is the distance from point to the line through a and b.
func perpendicular(a, b, point dataformats.Measurement) float64 {
	dx := b.Force - a.Force
	dy := b.Shrinkage - a.Shrinkage
	if dx == 0 && dy == 0 {
		return math.Hypot(point.Force-a.Force, point.Shrinkage-a.Shrinkage)
	}
	return math.Abs(dx*(a.Shrinkage-point.Shrinkage)-dy*(a.Force-point.Force)) / math.Hypot(dx, dy)
}
