package corridor

import "testing"

// Builds a synthetic labeled segment set: weights per cluster chosen so
// extraction order and tie-breaking are observable.
func labeledFixture() ([]Segment, []int, []Cluster) {
	segments := []Segment{
		{LineID: "a", Index: 0, StartX: 0, StartY: 0, EndX: 1, EndY: 0, Weight: 5},
		{LineID: "b", Index: 0, StartX: 0, StartY: 1, EndX: 1, EndY: 1, Weight: 4},
		{LineID: "b", Index: 1, StartX: 1, StartY: 1, EndX: 2, EndY: 1, Weight: 6},
		{LineID: "c", Index: 0, StartX: 0, StartY: 2, EndX: 1, EndY: 2, Weight: 10},
		{LineID: "d", Index: 0, StartX: 9, StartY: 9, EndX: 10, EndY: 9, Weight: 1},
	}
	labels := []int{0, 1, 1, 2, Noise}
	clusters := []Cluster{
		{ID: 0, Members: []int{0}, Weight: 5},
		{ID: 1, Members: []int{1, 2}, Weight: 10},
		{ID: 2, Members: []int{3}, Weight: 10},
	}
	return segments, labels, clusters
}

func TestExtractCorridors_OrderAndTieBreak(t *testing.T) {
	segments, labels, clusters := labeledFixture()

	corridors, _, err := ExtractCorridors(segments, labels, clusters)
	if err != nil {
		t.Fatalf("ExtractCorridors: %v", err)
	}
	if len(corridors) != 3 {
		t.Fatalf("expected 3 corridors, got %d", len(corridors))
	}

	// Clusters 1 and 2 tie at weight 10; the lower cluster id wins.
	wantClusterOrder := []int{1, 2, 0}
	for i, c := range corridors {
		if c.ID != i {
			t.Errorf("corridor %d has id %d; ids must be 0,1,2,... in emission order", i, c.ID)
		}
		if c.ClusterID != wantClusterOrder[i] {
			t.Errorf("corridor %d drawn from cluster %d, want %d", i, c.ClusterID, wantClusterOrder[i])
		}
	}

	// Weights are non-increasing in emission order.
	for i := 1; i < len(corridors); i++ {
		if corridors[i].Weight > corridors[i-1].Weight {
			t.Errorf("corridor %d weight %g exceeds corridor %d weight %g",
				i, corridors[i].Weight, i-1, corridors[i-1].Weight)
		}
	}
}

func TestExtractCorridors_Assignments(t *testing.T) {
	segments, labels, clusters := labeledFixture()

	corridors, assignments, err := ExtractCorridors(segments, labels, clusters)
	if err != nil {
		t.Fatalf("ExtractCorridors: %v", err)
	}
	if len(assignments) != len(segments) {
		t.Fatalf("expected one assignment per segment, got %d", len(assignments))
	}

	corridorOf := map[int]int{}
	for _, c := range corridors {
		corridorOf[c.ClusterID] = c.ID
	}
	for i, a := range assignments {
		if a.LineID != segments[i].LineID || a.SegmentIndex != segments[i].Index {
			t.Errorf("assignment %d identity mismatch: %+v", i, a)
		}
		if labels[i] == Noise {
			if a.CorridorID != -1 {
				t.Errorf("noise segment %d assigned corridor %d", i, a.CorridorID)
			}
			continue
		}
		if a.CorridorID != corridorOf[labels[i]] {
			t.Errorf("segment %d assigned corridor %d, want %d", i, a.CorridorID, corridorOf[labels[i]])
		}
	}
}

func TestExtractCorridors_NoClusters(t *testing.T) {
	segments := []Segment{{LineID: "x", Weight: 1}}
	labels := []int{Noise}

	corridors, assignments, err := ExtractCorridors(segments, labels, nil)
	if err != nil {
		t.Fatalf("ExtractCorridors: %v", err)
	}
	if len(corridors) != 0 {
		t.Errorf("expected no corridors, got %d", len(corridors))
	}
	if len(assignments) != 1 || assignments[0].CorridorID != -1 {
		t.Errorf("expected a single noise assignment, got %v", assignments)
	}
}
