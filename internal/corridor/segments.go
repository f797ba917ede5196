package corridor

import "math"

// segmentCountEpsilon guards the ceil against counting an extra segment
// when the line length is a near-exact multiple of the segment size.
const segmentCountEpsilon = 1e-5

// SplitLine splits a desire line into consecutive sub-segments of length
// segmentSize, walking from start to end. The final segment is clamped to
// the line's end point, so a remainder shorter than segmentSize still gets
// covered and no coordinate is skipped. A zero-length line produces
// exactly one zero-length segment.
func SplitLine(line DesireLine, segmentSize float64) ([]Segment, error) {
	if segmentSize <= 0 {
		return nil, &InvalidParameterError{Name: "segment_size", Value: segmentSize, Reason: "must be positive"}
	}

	angle := line.Angle()
	length := line.Length()
	rad := angle * math.Pi / 180
	xstep := segmentSize * math.Cos(rad)
	ystep := segmentSize * math.Sin(rad)

	n := int(math.Ceil(length/segmentSize - segmentCountEpsilon))
	if n < 1 {
		n = 1
	}

	segments := make([]Segment, n)
	for i := 0; i < n; i++ {
		seg := Segment{
			LineID: line.ID,
			Index:  i,
			StartX: line.StartX + float64(i)*xstep,
			StartY: line.StartY + float64(i)*ystep,
			EndX:   line.StartX + float64(i+1)*xstep,
			EndY:   line.StartY + float64(i+1)*ystep,
			Weight: line.Weight,
			Angle:  angle,
		}
		if i == n-1 {
			seg.EndX = line.EndX
			seg.EndY = line.EndY
		}
		segments[i] = seg
	}
	return segments, nil
}

// BuildSegments splits every line and flattens the results in input
// order, which fixes the deterministic processing order for clustering.
func BuildSegments(lines []DesireLine, segmentSize float64) ([]Segment, error) {
	var segments []Segment
	for _, line := range lines {
		segs, err := SplitLine(line, segmentSize)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segs...)
	}
	return segments, nil
}
