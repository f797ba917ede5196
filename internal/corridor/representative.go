package corridor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RepresentativeLine computes the corridor centerline for a cluster: the
// weighted mean of member start points paired with the weighted mean of
// member end points. Each segment's endpoints contribute proportionally
// to its weight.
//
// Input weights are positive by invariant, so the total weight of a
// non-empty cluster is positive; anything else is reported as a
// *DegenerateCorridorError rather than dividing by zero.
func RepresentativeLine(segments []Segment, cl Cluster) (Line, error) {
	n := len(cl.Members)
	weights := make([]float64, n)
	sx := make([]float64, n)
	sy := make([]float64, n)
	ex := make([]float64, n)
	ey := make([]float64, n)
	for i, m := range cl.Members {
		s := segments[m]
		weights[i] = s.Weight
		sx[i] = s.StartX
		sy[i] = s.StartY
		ex[i] = s.EndX
		ey[i] = s.EndY
	}

	if n == 0 || floats.Sum(weights) <= 0 {
		return Line{}, &DegenerateCorridorError{ClusterID: cl.ID}
	}

	return Line{
		StartX: stat.Mean(sx, weights),
		StartY: stat.Mean(sy, weights),
		EndX:   stat.Mean(ex, weights),
		EndY:   stat.Mean(ey, weights),
	}, nil
}
