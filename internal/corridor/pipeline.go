// Package corridor clusters weighted origin-destination desire lines
// into representative corridors.
//
// Each desire line is split into fixed-length segments; a density-based
// pass groups segments whose neighborhoods (under a joint distance+angle
// metric) carry enough aggregate weight; clusters are drained through a
// weight-keyed priority queue into ranked corridors, each summarized by
// a weighted-average line. The whole pipeline is a single-threaded,
// deterministic batch pass.
package corridor

// Result is the full output of one clustering run. Segments, Labels and
// Assignments are index-aligned.
type Result struct {
	Segments    []Segment
	Labels      []int
	Clusters    []Cluster
	Corridors   []Corridor
	Assignments []Assignment
}

// NoiseCount returns the number of segments labeled as noise.
func (r *Result) NoiseCount() int {
	n := 0
	for _, l := range r.Labels {
		if l == Noise {
			n++
		}
	}
	return n
}

// Run executes the corridor pipeline over the input desire lines:
// segmentation, density clustering, corridor extraction, representative
// lines. Parameters are validated before any processing.
func Run(lines []DesireLine, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	segments, err := BuildSegments(lines, p.SegmentSize)
	if err != nil {
		return nil, err
	}

	labels, clusters, err := DBSCAN(segments, p)
	if err != nil {
		return nil, err
	}

	corridors, assignments, err := ExtractCorridors(segments, labels, clusters)
	if err != nil {
		return nil, err
	}

	return &Result{
		Segments:    segments,
		Labels:      labels,
		Clusters:    clusters,
		Corridors:   corridors,
		Assignments: assignments,
	}, nil
}
