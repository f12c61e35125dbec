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
	"math"
)

// NegInf is the score of an unreachable cell.
// It is finite, and add/sub keep it unchanged, so penalties of any sign
// never turn an unreachable cell into a reachable one.
const NegInf = math.MinInt / 4

// MATRIX_BASE_SIZE is the base capacity of the matrix data.
const MATRIX_BASE_SIZE = 4096

// Matrix is a dense (Rows x Cols) score matrix stored row by row.
//
// Rows are indexed by i (positions in Y) and columns by j (positions in X),
// so a matrix for X of length n and Y of length m has m+1 rows and n+1 columns.
type Matrix struct {
	Rows, Cols int
	Data       []int // preset MATRIX_BASE_SIZE values to avoid frequent allocation.
}

// NewMatrix creates a rows x cols matrix with all cells set to 0.
func NewMatrix(rows, cols int) *Matrix {
	mat := &Matrix{Data: make([]int, 0, MATRIX_BASE_SIZE)}
	mat.resize(rows, cols)
	return mat
}

// resize changes the shape, reusing the data slice if it is big enough.
// All cells are reset to 0.
func (mat *Matrix) resize(rows, cols int) {
	n := rows * cols
	if n > cap(mat.Data) {
		c := (n + MATRIX_BASE_SIZE - 1) / MATRIX_BASE_SIZE * MATRIX_BASE_SIZE
		mat.Data = make([]int, n, c)
	} else {
		mat.Data = mat.Data[:n]
		clear(mat.Data)
	}
	mat.Rows, mat.Cols = rows, cols
}

// Get returns the value of cell (i, j).
func (mat *Matrix) Get(i, j int) int {
	return mat.Data[i*mat.Cols+j]
}

// Set sets the value of cell (i, j).
func (mat *Matrix) Set(i, j int, v int) {
	mat.Data[i*mat.Cols+j] = v
}

// In tells if (i, j) is inside the matrix.
func (mat *Matrix) In(i, j int) bool {
	return i >= 0 && j >= 0 && i < mat.Rows && j < mat.Cols
}

// Print lists all the cells, one row per line. Unreachable cells are shown as "-inf".
func (mat *Matrix) Print(wtr io.Writer, name string) {
	for i := 0; i < mat.Rows; i++ {
		fmt.Fprintf(wtr, "%s%d:", name, i)
		for j := 0; j < mat.Cols; j++ {
			v := mat.Get(i, j)
			if v == NegInf {
				fmt.Fprintf(wtr, " -inf")
			} else {
				fmt.Fprintf(wtr, " %d", v)
			}
		}
		fmt.Fprintln(wtr)
	}
}

// add returns v+d, or NegInf if v is NegInf.
func add(v, d int) int {
	if v == NegInf {
		return NegInf
	}
	return v + d
}

// sub returns v-d, or NegInf if v is NegInf.
func sub(v, d int) int {
	if v == NegInf {
		return NegInf
	}
	return v - d
}
