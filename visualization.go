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


package gotoh

import (
	"fmt"
	"io"
)

// Plot plots one matrix of the last alignment as a tab-delimited text table.
// Columns are positions of x, rows are positions of y, and unreachable cells
// are shown as ".".
func (algn *Aligner) Plot(wtr io.Writer, k MatrixKind) {
	mat := algn.matrix(k)

	fmt.Fprintf(wtr, "%s\t \t   ", k)
	for _, b := range algn.x {
		fmt.Fprintf(wtr, "\t%3c", b)
	}
	fmt.Fprintln(wtr)

	var v int
	for i := 0; i < mat.Rows; i++ {
		if i == 0 {
			fmt.Fprintf(wtr, "%3d\t ", i)
		} else {
			fmt.Fprintf(wtr, "%3d\t%c", i, algn.y[i-1])
		}
		for j := 0; j < mat.Cols; j++ {
			v = mat.Get(i, j)
			if v == NegInf {
				fmt.Fprintf(wtr, "\t  .")
			} else {
				fmt.Fprintf(wtr, "\t%3d", v)
			}
		}
		fmt.Fprintln(wtr)
	}
}

// PlotPath plots the traceback path of r over the matrix grid.
// A cell on the path shows the arrow of the step that consumed it:
//
//	⬊    Match
//	⬂    Mismatch
//	↧    Y symbol against a gap (GapInY)
//	⟼    X symbol against a gap (GapInX)
//	⊕    The origin
func (algn *Aligner) PlotPath(wtr io.Writer, r *AlignmentResult) {
	r.process()
	rows, cols := len(algn.y)+1, len(algn.x)+1

	grid := poolBytes.Get().(*[]byte)
	marks := make([]rune, rows*cols)

	// walk forward from the origin.
	var i, j int
	var k uint32
	for _, op := range r.Ops {
		for k = 0; k < op.N; k++ {
			switch op.Op {
			case OpMatch, OpMismatch:
				i++
				j++
			case OpIns:
				i++
			case OpDel:
				j++
			}
			marks[i*cols+j] = opArrows[op.Op]
		}
	}
	marks[0] = '⊕'

	fmt.Fprintf(wtr, "   \t \t ")
	for _, b := range algn.x {
		fmt.Fprintf(wtr, "\t%c", b)
	}
	fmt.Fprintln(wtr)
	for i = 0; i < rows; i++ {
		*grid = (*grid)[:0]
		if i == 0 {
			*grid = append(*grid, ' ')
		} else {
			*grid = append(*grid, algn.y[i-1])
		}
		for j = 0; j < cols; j++ {
			*grid = append(*grid, '\t')
			if marks[i*cols+j] == 0 {
				*grid = append(*grid, '.')
			} else {
				*grid = append(*grid, string(marks[i*cols+j])...)
			}
		}
		fmt.Fprintf(wtr, "%3d\t%s\n", i, *grid)
	}

	*grid = (*grid)[:0]
	poolBytes.Put(grid)
}
