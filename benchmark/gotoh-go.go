// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/shenwei356/gotoh"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
Global alignment with affine gap penalties (Gotoh) in Golang

Version: v%s

Input file format:
  line 1: four integers, the match score, mismatch penalty,
          gap open penalty and gap extension penalty.
  line 2: sequence X
  line 3: sequence Y
  Example:
  2 1 0 2
  TACGAGTACGA
  ACTGACGACTGAC

Usage: 
  1. Align two sequences from the positional arguments.

        %s [options] <X> <Y> <p1> <p2> <g> <s>

  2. Align the sequence pair from the input file (described above).

        %s [options] -i input.txt

Options/Flags:
`, version, app, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	infile := flag.String("i", "", "input file. ")
	verbose := flag.Bool("v", false, "print the inputs")
	plot := flag.Bool("P", false, "plot the three score matrices and the traceback path")
	noOutput := flag.Bool("N", false, "do not output alignment (for benchmark)")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	// go tool pprof -http=:8080 cpu.pprof
	if *pprofCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pprofMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	var input *gotoh.Input
	var err error
	if *infile == "" {
		if flag.NArg() != 6 {
			checkError(fmt.Errorf("if flag -i not given, please give me 6 arguments: X Y p1 p2 g s"))
		}
		input, err = gotoh.ParseArgs(flag.Args())
		checkError(err)
	} else {
		fh, err := os.Open(*infile)
		if err != nil {
			checkError(fmt.Errorf("failed to read file: %s", *infile))
		}
		input, err = gotoh.ReadInput(fh)
		fh.Close()
		checkError(err)
	}

	outfh := bufio.NewWriter(os.Stdout)

	algn := gotoh.New(&input.Penalties)

	defer func() {
		gotoh.RecycleAligner(algn)
		outfh.Flush()
	}()

	if *verbose {
		p := input.Penalties
		fmt.Fprintln(outfh, "INPUT:")
		fmt.Fprintln(outfh, p.Match, p.Mismatch, p.GapOpen, p.GapExt)
		fmt.Fprintf(outfh, "%s\n%s\n\n", input.X, input.Y)
	}

	r, err := algn.Align(input.X, input.Y)
	if err != nil {
		outfh.Flush()
		checkError(err)
	}
	defer gotoh.RecycleAlignmentResult(r)

	if *noOutput {
		return
	}

	X, A, Y := r.AlignmentText(input.X, input.Y)
	fmt.Fprintf(outfh, "x       %s\n", *X)
	fmt.Fprintf(outfh, "        %s\n", *A)
	fmt.Fprintf(outfh, "y       %s\n", *Y)
	fmt.Fprintf(outfh, "cigar   %s\n", r.CIGAR())
	fmt.Fprintf(outfh, "score: %d, length: %d, matches: %d (%.2f%%), mismatches: %d, gaps: %d, gap regions: %d\n",
		r.Score, r.AlignLen, r.Matches, percent(r.Matches, r.AlignLen),
		r.Mismatches, r.Gaps, r.GapRegions)
	gotoh.RecycleAlignmentText(X, A, Y)

	if *plot {
		for _, k := range []gotoh.MatrixKind{gotoh.MatM, gotoh.MatGapInY, gotoh.MatGapInX} {
			fmt.Fprintln(outfh)
			algn.Plot(outfh, k)
		}
		fmt.Fprintln(outfh)
		algn.PlotPath(outfh, r)
	}
}

func percent(a, b uint32) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b) * 100
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
