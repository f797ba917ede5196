package lineio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/banshee-data/corridor.report/internal/corridor"
)

// WriteCorridors writes the per-corridor records as tab-separated text
// with a WKT LINESTRING geometry column, in corridor id (emission) order.
func WriteCorridors(w io.Writer, corridors []corridor.Corridor) error {
	if _, err := fmt.Fprintln(w, "corridor_id\tweight\tsegments\tgeometry"); err != nil {
		return err
	}
	for _, c := range corridors {
		r := c.Representative
		_, err := fmt.Fprintf(w, "%d\t%g\t%d\tLINESTRING(%g %g, %g %g)\n",
			c.ID, c.Weight, c.MemberCount, r.StartX, r.StartY, r.EndX, r.EndY)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteAssignments writes one record per segment with its corridor
// assignment (-1 for noise), in segment input order.
func WriteAssignments(w io.Writer, result *corridor.Result) error {
	if _, err := fmt.Fprintln(w, "line_id\tsegment_index\tweight\tangle\tcorridor_id\tgeometry"); err != nil {
		return err
	}
	for i, s := range result.Segments {
		a := result.Assignments[i]
		_, err := fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%d\tLINESTRING(%g %g, %g %g)\n",
			s.LineID, s.Index, s.Weight, s.Angle, a.CorridorID,
			s.StartX, s.StartY, s.EndX, s.EndY)
		if err != nil {
			return err
		}
	}
	return nil
}

// jsonExport is the stable shape of the JSON result export.
type jsonExport struct {
	Corridors   []corridor.Corridor   `json:"corridors"`
	Assignments []corridor.Assignment `json:"assignments"`
	NoiseCount  int                   `json:"noise_count"`
}

// WriteJSON writes the corridors and assignments as a single indented
// JSON document for programmatic consumers.
func WriteJSON(w io.Writer, result *corridor.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonExport{
		Corridors:   result.Corridors,
		Assignments: result.Assignments,
		NoiseCount:  result.NoiseCount(),
	})
}
