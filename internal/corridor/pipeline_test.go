package corridor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The reference scenario: two close, parallel lines become one corridor
// with their combined weight.
func TestRun_TwoLineScenario(t *testing.T) {
	lines := []DesireLine{
		{ID: "1", Weight: 10, StartX: 0, StartY: 0, EndX: 5, EndY: 5},
		{ID: "2", Weight: 15, StartX: 2, StartY: 2, EndX: 7, EndY: 7},
	}
	p := Params{MaxDist: 3, MinDensity: 5, MaxAngle: 10, SegmentSize: 10}

	result, err := Run(lines, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Segments) != 2 {
		t.Fatalf("expected one segment per line, got %d", len(result.Segments))
	}
	if len(result.Corridors) != 1 {
		t.Fatalf("expected 1 corridor, got %d", len(result.Corridors))
	}
	c := result.Corridors[0]
	if c.ID != 0 {
		t.Errorf("corridor id = %d, want 0", c.ID)
	}
	if c.Weight != 25 {
		t.Errorf("corridor weight = %g, want 25", c.Weight)
	}
	for _, a := range result.Assignments {
		if a.CorridorID != 0 {
			t.Errorf("segment %s:%d assigned corridor %d, want 0", a.LineID, a.SegmentIndex, a.CorridorID)
		}
	}
}

// Running the pipeline twice on identical input yields identical output.
func TestRun_Deterministic(t *testing.T) {
	lines := []DesireLine{
		{ID: "a", Weight: 4, StartX: 0, StartY: 0, EndX: 60, EndY: 3},
		{ID: "b", Weight: 6, StartX: 1, StartY: 2, EndX: 61, EndY: 5},
		{ID: "c", Weight: 2, StartX: 0, StartY: 40, EndX: 60, EndY: 38},
		{ID: "d", Weight: 9, StartX: 2, StartY: 41, EndX: 62, EndY: 39},
		{ID: "e", Weight: 1, StartX: 300, StartY: 300, EndX: 360, EndY: 300},
	}
	p := Params{MaxDist: 4, MinDensity: 6, MaxAngle: 8, SegmentSize: 25}

	first, err := Run(lines, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(lines, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

// Noise in the assignment record matches the noise labels exactly, and
// corridor weights never increase in emission order.
func TestRun_NoiseAndOrderingInvariants(t *testing.T) {
	lines := []DesireLine{
		{ID: "big1", Weight: 20, StartX: 0, StartY: 0, EndX: 30, EndY: 0},
		{ID: "big2", Weight: 20, StartX: 0, StartY: 1, EndX: 30, EndY: 1},
		{ID: "small1", Weight: 3, StartX: 0, StartY: 100, EndX: 30, EndY: 100},
		{ID: "small2", Weight: 3, StartX: 0, StartY: 101, EndX: 30, EndY: 101},
		{ID: "lonely", Weight: 1, StartX: 500, StartY: 500, EndX: 530, EndY: 500},
	}
	p := Params{MaxDist: 2, MinDensity: 5, MaxAngle: 5, SegmentSize: 50}

	result, err := Run(lines, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Corridors) != 2 {
		t.Fatalf("expected 2 corridors, got %d", len(result.Corridors))
	}
	if result.Corridors[0].Weight != 40 || result.Corridors[1].Weight != 6 {
		t.Errorf("corridor weights = %g, %g; want 40, 6",
			result.Corridors[0].Weight, result.Corridors[1].Weight)
	}

	for i, a := range result.Assignments {
		isNoise := result.Labels[i] == Noise
		if isNoise != (a.CorridorID == -1) {
			t.Errorf("assignment %d: label %d but corridor id %d", i, result.Labels[i], a.CorridorID)
		}
	}
	if result.NoiseCount() != 1 {
		t.Errorf("noise count = %d, want 1", result.NoiseCount())
	}
}

func TestRun_InvalidParams(t *testing.T) {
	cases := []Params{
		{MaxDist: 0, MinDensity: 1, MaxAngle: 10, SegmentSize: 1},
		{MaxDist: 1, MinDensity: 0, MaxAngle: 10, SegmentSize: 1},
		{MaxDist: 1, MinDensity: 1, MaxAngle: 181, SegmentSize: 1},
		{MaxDist: 1, MinDensity: 1, MaxAngle: 10, SegmentSize: 0},
	}
	for _, p := range cases {
		if _, err := Run(nil, p); err == nil {
			t.Errorf("params %+v: expected validation error", p)
		}
	}
}

func TestRun_EmptyInput(t *testing.T) {
	result, err := Run(nil, DefaultParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Corridors) != 0 || len(result.Assignments) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
