// Command gen-lines generates synthetic desire-line input for the
// corridors tool: a configurable number of corridor-shaped bundles
// (lines jittered around a shared heading and location) plus uniform
// background noise lines. Output is deterministic for a fixed seed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
)

var (
	out       = flag.String("out", "lines.txt", "Output file")
	seed      = flag.Int64("seed", 1, "Random seed")
	bundles   = flag.Int("bundles", 3, "Number of corridor bundles")
	perBundle = flag.Int("lines-per-bundle", 10, "Desire lines per bundle")
	noise     = flag.Int("noise", 5, "Number of isolated noise lines")
	length    = flag.Float64("length", 100, "Base line length")
	jitter    = flag.Float64("jitter", 3, "Maximum perpendicular offset within a bundle")
	angleSpan = flag.Float64("angle-span", 4, "Maximum heading deviation in degrees within a bundle")
	maxWeight = flag.Float64("max-weight", 20, "Maximum line weight")
)

func main() {
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	rng := rand.New(rand.NewSource(*seed))
	fmt.Fprintf(w, "# synthetic desire lines: seed=%d bundles=%d lines-per-bundle=%d noise=%d\n",
		*seed, *bundles, *perBundle, *noise)

	for b := 0; b < *bundles; b++ {
		// Spread bundle origins and headings apart so bundles stay
		// distinct under reasonable clustering thresholds.
		originX := float64(b) * 4 * *length
		originY := float64(b) * 2 * *length
		heading := float64(b*45) + rng.Float64()*10

		for i := 0; i < *perBundle; i++ {
			angle := heading + (rng.Float64()*2-1)*(*angleSpan)
			// Jitter the start point perpendicular to the heading.
			perp := (heading + 90) * math.Pi / 180
			offset := (rng.Float64()*2 - 1) * (*jitter)
			along := rng.Float64() * *length / 4

			rad := heading * math.Pi / 180
			sx := originX + offset*math.Cos(perp) + along*math.Cos(rad)
			sy := originY + offset*math.Sin(perp) + along*math.Sin(rad)
			arad := angle * math.Pi / 180
			ex := sx + *length*math.Cos(arad)
			ey := sy + *length*math.Sin(arad)

			weight := 1 + rng.Float64()*(*maxWeight-1)
			fmt.Fprintf(w, "b%d_%d %.3f %.3f %.3f %.3f %.3f\n", b, i, weight, sx, sy, ex, ey)
		}
	}

	for i := 0; i < *noise; i++ {
		sx := (rng.Float64()*2 - 1) * 10 * *length
		sy := (rng.Float64()*2 - 1) * 10 * *length
		arad := rng.Float64() * 2 * math.Pi
		ex := sx + *length*math.Cos(arad)
		ey := sy + *length*math.Sin(arad)
		weight := 1 + rng.Float64()*2
		fmt.Fprintf(w, "n%d %.3f %.3f %.3f %.3f %.3f\n", i, weight, sx, sy, ex, ey)
	}

	log.Printf("wrote %d desire lines to %s", *bundles*(*perBundle)+*noise, *out)
}
