package corridor

import "math"

// Noise is the cluster label for segments that are neither core nor
// reachable from any core segment.
const Noise = -1

// DesireLine is a straight origin-destination demand line with a weight
// (for example a trip count). Lines are read-only once loaded.
type DesireLine struct {
	ID     string
	Weight float64
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64
}

// Length returns the Euclidean length of the line.
func (l DesireLine) Length() float64 {
	return math.Hypot(l.EndX-l.StartX, l.EndY-l.StartY)
}

// Angle returns the line's heading in degrees, in (-180, 180].
// Headings are directed: a line and its reverse have opposite headings.
func (l DesireLine) Angle() float64 {
	return math.Atan2(l.EndY-l.StartY, l.EndX-l.StartX) * 180 / math.Pi
}

// Segment is a fixed-length piece of a desire line, the clustering atom.
// Its identity is (LineID, Index). The weight and heading are inherited
// from the parent line.
type Segment struct {
	LineID string
	Index  int
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64
	Weight float64
	Angle  float64
}

// MidX returns the x coordinate of the segment midpoint.
func (s Segment) MidX() float64 { return (s.StartX + s.EndX) / 2 }

// MidY returns the y coordinate of the segment midpoint.
func (s Segment) MidY() float64 { return (s.StartY + s.EndY) / 2 }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.EndX-s.StartX, s.EndY-s.StartY)
}

// Cluster is a finalized group of segments sharing a label. Members holds
// indexes into the segment slice the labels were computed over, in input
// order. Weight is the sum of member segment weights.
type Cluster struct {
	ID      int
	Members []int
	Weight  float64
}

// Line is a start/end point pair, used for corridor representative lines.
type Line struct {
	StartX float64 `json:"start_x"`
	StartY float64 `json:"start_y"`
	EndX   float64 `json:"end_x"`
	EndY   float64 `json:"end_y"`
}

// Corridor is a ranked cluster rendered as one representative line.
// Corridor ids start at 0 and are assigned in strictly non-increasing
// order of aggregate weight.
type Corridor struct {
	ID             int     `json:"corridor_id"`
	ClusterID      int     `json:"cluster_id"`
	Weight         float64 `json:"weight"`
	MemberCount    int     `json:"segments"`
	Representative Line    `json:"representative"`
}

// Assignment records the corridor a segment ended up in. CorridorID is
// -1 for noise segments.
type Assignment struct {
	LineID       string `json:"line_id"`
	SegmentIndex int    `json:"segment_index"`
	CorridorID   int    `json:"corridor_id"`
}
