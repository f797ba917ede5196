package corridor

import "math"

// pointSegmentDistance returns the shortest distance from point (px, py)
// to the segment (x1, y1)-(x2, y2). If the segment is a point the
// distance to that point is returned.
func pointSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 && dy == 0 {
		return math.Hypot(px-x1, py-y1)
	}

	// Projection parameter of the point onto the infinite line; clamp to
	// the segment's endpoints.
	t := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
	var nearX, nearY float64
	switch {
	case t < 0:
		nearX, nearY = x1, y1
	case t > 1:
		nearX, nearY = x2, y2
	default:
		nearX, nearY = x1+t*dx, y1+t*dy
	}
	return math.Hypot(px-nearX, py-nearY)
}

// Distance returns the spatial separation between two segments: the
// larger of the two midpoint-to-segment distances. Taking the maximum
// makes the value symmetric in its arguments.
func Distance(a, b Segment) float64 {
	dab := pointSegmentDistance(a.MidX(), a.MidY(), b.StartX, b.StartY, b.EndX, b.EndY)
	dba := pointSegmentDistance(b.MidX(), b.MidY(), a.StartX, a.StartY, a.EndX, a.EndY)
	return math.Max(dab, dba)
}

// AngleBetween returns the absolute difference between the two segments'
// headings, normalized to [0, 180] degrees. Headings are directed, so a
// segment and its reverse are 180 degrees apart; opposing demand flows do
// not cluster together.
func AngleBetween(a, b Segment) float64 {
	d := math.Abs(a.Angle - b.Angle)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Metric returns the (distance, angle) pair between two segments.
func Metric(a, b Segment) (dist, angle float64) {
	return Distance(a, b), AngleBetween(a, b)
}

// Reachable reports whether two segments are within both the distance and
// angle thresholds of each other. The predicate is symmetric. It is not
// transitive: reachability chains are what cluster expansion follows.
func Reachable(a, b Segment, p Params) bool {
	if AngleBetween(a, b) > p.MaxAngle {
		return false
	}
	return Distance(a, b) <= p.MaxDist
}
