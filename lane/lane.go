// Package lane computes lane center positions and eases a follower between them
package lane

import "math"

// Positions returns count lane centers spaced evenly and symmetric about x=0
func Positions(count int, spacing float64) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	half := float64(count-1) / 2
	for i := range out {
		out[i] = (float64(i) - half) * spacing
	}
	return out
}

// ClosestIndex returns the index of the position nearest x; ties keep the lower index
// Returns -1 for an empty slice
func ClosestIndex(x float64, positions []float64) int {
	if len(positions) == 0 {
		return -1
	}
	best := 0
	bestDist := math.Abs(x - positions[0])
	for i := 1; i < len(positions); i++ {
		if d := math.Abs(x - positions[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
