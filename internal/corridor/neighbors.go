package corridor

import "math"

// estimatedSegmentsPerCell sizes the initial grid allocation.
const estimatedSegmentsPerCell = 4

// NeighborIndex answers reachability queries over a fixed segment set
// using a regular grid keyed on segment midpoints.
//
// If two segments are reachable, the closest point on one is within
// MaxDist of the other's midpoint, and that point is at most half a
// segment length from its own midpoint. Midpoints of reachable segments
// are therefore never more than MaxDist + SegmentSize/2 apart, so a grid
// with that cell size only ever needs a 3x3 cell scan per query.
type NeighborIndex struct {
	segments []Segment
	params   Params
	cellSize float64
	grid     map[int64][]int
}

// NewNeighborIndex builds the grid over the given segments. The segment
// slice is not copied; it must not change while the index is in use.
func NewNeighborIndex(segments []Segment, p Params) *NeighborIndex {
	ni := &NeighborIndex{
		segments: segments,
		params:   p,
		cellSize: p.MaxDist + p.SegmentSize/2,
		grid:     make(map[int64][]int, len(segments)/estimatedSegmentsPerCell+1),
	}
	for i, s := range segments {
		id := ni.cellID(cellCoord(s.MidX(), ni.cellSize), cellCoord(s.MidY(), ni.cellSize))
		ni.grid[id] = append(ni.grid[id], i)
	}
	return ni
}

func cellCoord(v, cellSize float64) int64 {
	return int64(math.Floor(v / cellSize))
}

// cellID maps a cell coordinate pair to a unique id using Szudzik's
// pairing function, after zigzag-encoding to handle negative cells.
func (ni *NeighborIndex) cellID(cx, cy int64) int64 {
	var a, b int64
	if cx >= 0 {
		a = 2 * cx
	} else {
		a = -2*cx - 1
	}
	if cy >= 0 {
		b = 2 * cy
	} else {
		b = -2*cy - 1
	}
	if a >= b {
		return a*a + a + b
	}
	return a + b*b
}

// Neighbors returns the indexes of all segments reachable from
// segments[i], including i itself. Candidates come from the 3x3 cell
// neighborhood and are filtered through the exact Reachable predicate.
// The result order is deterministic: cells are scanned in a fixed order
// and segments were inserted in input order.
func (ni *NeighborIndex) Neighbors(i int) []int {
	s := ni.segments[i]
	cx := cellCoord(s.MidX(), ni.cellSize)
	cy := cellCoord(s.MidY(), ni.cellSize)

	var neighbors []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, j := range ni.grid[ni.cellID(cx+dx, cy+dy)] {
				if Reachable(s, ni.segments[j], ni.params) {
					neighbors = append(neighbors, j)
				}
			}
		}
	}
	return neighbors
}

// Density returns the sum of weights of the given segment indexes. With
// the output of Neighbors (which includes the query segment) this is the
// weighted density used by the clustering pass.
func (ni *NeighborIndex) Density(indexes []int) float64 {
	var sum float64
	for _, j := range indexes {
		sum += ni.segments[j].Weight
	}
	return sum
}
