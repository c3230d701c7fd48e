// Command splinefit smooths a column of (x, y) samples with a cubic
// B-spline fit at a chosen cutoff wavelength.
//
// Usage:
//
//	splinefit -wavelength 30 -input sounding.txt -output fit.txt
//	splinefit -wavelength 30 -bcdegree 1 < sounding.txt > fit.txt
//	splinefit -nodes 20 -step 2 < sounding.txt
//
// Each input line holds two whitespace-separated floats, x then y, with
// x strictly increasing. The output is a four-column table with a single
// header line and one row at every sample point and at every midpoint
// between consecutive samples.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	splinesmoother "github.com/tphakala/go-bspline-smoother"
)

func main() {
	var (
		input      = flag.String("input", "", "Input file (defaults to stdin)")
		output     = flag.String("output", "", "Output file (defaults to stdout)")
		wavelength = flag.Float64("wavelength", 0, "Cutoff wavelength in x units (required unless -nodes is set)")
		step       = flag.Int("step", 0, "Subsample stride applied to the input before fitting")
		bcDegree   = flag.Int("bcdegree", defaultBCDegree, "Derivative degree zeroed at the endpoints (0, 1 or 2)")
		nodes      = flag.Int("nodes", 0, "Explicit node count (0 derives it from the wavelength)")
		debug      = flag.Bool("debug", false, "Enable diagnostic output on stderr")
		version    = flag.Bool("version", false, "Print version information and exit")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("splinefit: ")

	if *version {
		fmt.Println(splinesmoother.Version())
		fmt.Println(splinesmoother.AttributionURL)
		return
	}

	if *wavelength <= 0 && *nodes == 0 {
		flag.Usage()
		log.Fatal("a positive -wavelength (or an explicit -nodes) is required")
	}

	bc, err := splinesmoother.ParseBoundaryCondition(*bcDegree)
	if err != nil {
		log.Fatalf("bad -bcdegree: %v", err)
	}

	in := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("unable to open %s: %v", *input, err)
		}
		defer f.Close()
		in = f
	}

	x, y, err := readSamples(in)
	if err != nil {
		log.Fatalf("reading %s: %v", inputName(*input), err)
	}
	x, y = subsample(x, y, *step)

	cfg := &splinesmoother.Config{
		Wavelength: *wavelength,
		NumNodes:   *nodes,
	}
	if *debug {
		cfg.DebugLog = os.Stderr
		log.Printf("wavelength %g, step %d, nodes %d, boundary %s, %d samples",
			*wavelength, *step, *nodes, bc, len(x))
	}

	fit, err := splinesmoother.Smooth(x, y, cfg, bc)
	if err != nil {
		log.Fatalf("spline setup failed: %v", err)
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("unable to open %s: %v", *output, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := writeTable(w, x, y, fit); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	if *debug {
		log.Printf("variance: %g", fit.Variance())
	}
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
