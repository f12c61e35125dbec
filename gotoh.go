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


// Package gotoh implements global pairwise alignment with affine gap penalties
// (Gotoh, J. Mol. Biol. 1982), using three full score matrices and a
// deterministic traceback.
package gotoh

import (
	"sync"
)

// Penalties contains the scoring parameters.
// Match is added for identical symbols, Mismatch is subtracted otherwise.
// A gap of length L costs GapOpen + (L-1)*GapExt.
// Values are used as given, zero or negative ones included.
type Penalties struct {
	Match    int
	Mismatch int
	GapOpen  int
	GapExt   int
}

// DefaultPenalties is used by New when no penalties are given.
var DefaultPenalties = Penalties{
	Match:    2,
	Mismatch: 1,
	GapOpen:  2,
	GapExt:   1,
}

// Aligner is the object for aligning,
// which can apply to multiple pairs of X and Y sequences.
// And it's from a object pool, in case a large number of alignment are needed.
//
// An Aligner must not be shared between goroutines.
type Aligner struct {
	p *Penalties

	// Score matrices of the last alignment, (len(y)+1) x (len(x)+1).
	M, GapInY, GapInX *Matrix

	x, y []byte // the last aligned pair
}

// object pool of aligners.
var poolAligner = &sync.Pool{New: func() interface{} {
	algn := Aligner{
		M:      NewMatrix(0, 0),
		GapInY: NewMatrix(0, 0),
		GapInX: NewMatrix(0, 0),
	}
	return &algn
}}

// New returns a new Aligner from the object pool.
// DefaultPenalties is used if p is nil.
func New(p *Penalties) *Aligner {
	algn := poolAligner.Get().(*Aligner)
	if p == nil {
		p = &DefaultPenalties
	}
	algn.p = p
	return algn
}

// RecycleAligner recycles an Aligner object.
func RecycleAligner(algn *Aligner) {
	if algn != nil {
		algn.x, algn.y = nil, nil
		poolAligner.Put(algn)
	}
}

// Penalties returns the penalties in use.
func (algn *Aligner) Penalties() Penalties {
	return *algn.p
}

// matrix returns the matrix of a kind.
func (algn *Aligner) matrix(k MatrixKind) *Matrix {
	switch k {
	case MatGapInY:
		return algn.GapInY
	case MatGapInX:
		return algn.GapInX
	default:
		return algn.M
	}
}

// Score returns the value of cell (i, j) of a matrix filled by the last Align call.
// It returns false if the cell is out of range or unreachable.
func (algn *Aligner) Score(k MatrixKind, i, j int) (int, bool) {
	mat := algn.matrix(k)
	if !mat.In(i, j) {
		return 0, false
	}
	v := mat.Get(i, j)
	return v, v != NegInf
}

// Align performs global alignment of x (columns) and y (rows).
// Empty sequences are allowed. Do not forget to recycle the result
// with RecycleAlignmentResult().
//
// The only possible error is ErrInconsistentMatrix, which means a bug.
func (algn *Aligner) Align(x, y []byte) (*AlignmentResult, error) {
	algn.x, algn.y = x, y

	algn.fill(x, y)

	return algn.backTrace(x, y)
}

// AffineAlign aligns x and y with the match score p1, mismatch penalty p2,
// gap open penalty g and gap extension penalty s.
// It returns the aligned x and y with GapSymbol for gaps, and the optimal score.
func AffineAlign(x, y string, p1, p2, g, s int) (string, string, int, error) {
	p := Penalties{Match: p1, Mismatch: p2, GapOpen: g, GapExt: s}
	algn := New(&p)
	defer RecycleAligner(algn)

	_x, _y := []byte(x), []byte(y)
	r, err := algn.Align(_x, _y)
	if err != nil {
		return "", "", 0, err
	}
	defer RecycleAlignmentResult(r)

	X, Y := r.Strings(_x, _y)
	return X, Y, r.Score, nil
}
