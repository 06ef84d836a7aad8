package postprocess

import (
	"sort"

	"riglogger/dataformats"
)

// Reduce sorts the points by force and averages them into equal width bins,
// collapsing noise and back-tracking traces into one clean series. Series
// without any force spread reduce to nothing.
func Reduce(points []dataformats.Measurement, bins int) []dataformats.Measurement {
	if len(points) < 2 || bins < 1 {
		return points
	}
	sorted := make([]dataformats.Measurement, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Force < sorted[j].Force })

	low := sorted[0].Force
	high := sorted[len(sorted)-1].Force
	if high == low {
		return nil
	}
	width := (high - low) / float64(bins)

	forceSums := make([]float64, bins)
	shrinkSums := make([]float64, bins)
	counts := make([]int, bins)
	for _, point := range sorted {
		index := int((point.Force - low) / width)
		if index >= bins {
			index = bins - 1
		}
		forceSums[index] += point.Force
		shrinkSums[index] += point.Shrinkage
		counts[index]++
	}

	reduced := make([]dataformats.Measurement, 0, bins)
	for i := 0; i < bins; i++ {
		if counts[i] == 0 {
			continue
		}
		reduced = append(reduced, dataformats.Measurement{
			Force:     forceSums[i] / float64(counts[i]),
			Shrinkage: shrinkSums[i] / float64(counts[i]),
		})
	}
	return reduced
}
