// Command corridors clusters a file of weighted desire lines into ranked
// corridors and writes the per-corridor and per-segment outputs. Results
// can additionally be persisted to SQLite and rendered as an HTML chart
// or a PNG plot.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/corridor.report/internal/corridor"
	"github.com/banshee-data/corridor.report/internal/corridordb"
	"github.com/banshee-data/corridor.report/internal/lineio"
	"github.com/banshee-data/corridor.report/internal/report"
)

var (
	input       = flag.String("input", "", "Input desire-line file (line_id weight start_x start_y end_x end_y per line)")
	maxDist     = flag.Float64("max-dist", corridor.DefaultMaxDist, "Maximum spatial separation between reachable segments")
	minDensity  = flag.Float64("min-density", corridor.DefaultMinDensity, "Minimum sum of neighbor weights for a core segment")
	maxAngle    = flag.Float64("max-angle", corridor.DefaultMaxAngle, "Maximum heading deviation in degrees (0-180)")
	segmentSize = flag.Float64("segment-size", corridor.DefaultSegmentSize, "Length each desire line is split into")
	outPrefix   = flag.String("out", "", "Output path prefix (default: the input path)")
	jsonOut     = flag.String("json", "", "Optional JSON result file")
	dbPath      = flag.String("db", "", "Optional SQLite database to record the run in")
	migrations  = flag.String("migrations", "", "Optional migrations directory to apply before recording the run")
	chartOut    = flag.String("chart", "", "Optional HTML chart file")
	plotOut     = flag.String("plot", "", "Optional PNG plot file")
	strict      = flag.Bool("strict", false, "Abort on the first malformed input record instead of skipping it")
)

func main() {
	flag.Parse()

	if *input == "" {
		log.Fatal("input file is required")
	}

	params := corridor.Params{
		MaxDist:     *maxDist,
		MinDensity:  *minDensity,
		MaxAngle:    *maxAngle,
		SegmentSize: *segmentSize,
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	lines, err := lineio.ReadFile(*input, lineio.Options{Strict: *strict})
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	log.Printf("read %d desire lines from %s", len(lines), *input)

	result, err := corridor.Run(lines, params)
	if err != nil {
		log.Fatalf("clustering failed: %v", err)
	}
	log.Printf("clustered %d segments into %d corridors (%d noise segments)",
		len(result.Segments), len(result.Corridors), result.NoiseCount())

	prefix := *outPrefix
	if prefix == "" {
		prefix = *input
	}
	if err := writeFile(prefix+".corridors.tsv", func(f *os.File) error {
		return lineio.WriteCorridors(f, result.Corridors)
	}); err != nil {
		log.Fatalf("failed to write corridor list: %v", err)
	}
	if err := writeFile(prefix+".segments.tsv", func(f *os.File) error {
		return lineio.WriteAssignments(f, result)
	}); err != nil {
		log.Fatalf("failed to write segment list: %v", err)
	}

	if *jsonOut != "" {
		if err := writeFile(*jsonOut, func(f *os.File) error {
			return lineio.WriteJSON(f, result)
		}); err != nil {
			log.Fatalf("failed to write JSON result: %v", err)
		}
	}

	if *dbPath != "" {
		db, err := corridordb.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		if *migrations != "" {
			if err := db.MigrateUp(*migrations); err != nil {
				log.Fatalf("failed to apply migrations: %v", err)
			}
		}
		runID, err := db.SaveResult(*input, params, len(lines), result)
		if err != nil {
			log.Fatalf("failed to record run: %v", err)
		}
		log.Printf("recorded run %s in %s", runID, *dbPath)
	}

	if *chartOut != "" {
		if err := writeFile(*chartOut, func(f *os.File) error {
			return report.RenderChart(f, lines, result.Corridors)
		}); err != nil {
			log.Fatalf("failed to render chart: %v", err)
		}
	}

	if *plotOut != "" {
		if err := report.SavePlot(*plotOut, lines, result.Corridors); err != nil {
			log.Fatalf("failed to render plot: %v", err)
		}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
