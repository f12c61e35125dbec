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
	"errors"
	"fmt"
)

// ErrInconsistentMatrix means that no predecessor of a cell explains its score
// during the traceback, which can only be caused by a bug in filling the matrices.
var ErrInconsistentMatrix = errors.New("gotoh: inconsistent score matrices")

// startMatrix chooses the matrix with the highest score at (i, j),
// preferring M, then GapInY, then GapInX.
func (algn *Aligner) startMatrix(i, j int) (MatrixKind, int) {
	kind, best := MatM, algn.M.Get(i, j)
	var v int
	for _, k := range matrixKinds[1:] {
		if v = algn.matrix(k).Get(i, j); v > best {
			kind, best = k, v
		}
	}
	return kind, best
}

// backTrace walks from the bottom-right cell to the first row or column.
func (algn *Aligner) backTrace(x, y []byte) (*AlignmentResult, error) {
	p := algn.p
	M := algn.M
	Y := algn.GapInY
	X := algn.GapInX

	i, j := len(y), len(x)
	r := NewAlignmentResult()

	cur, score := algn.startMatrix(i, j)
	r.Score = score
	r.Start = cur

	var v, d, ci, cj int
	var found bool
	for i > 0 && j > 0 {
		found = false
		ci, cj = i, j
		switch cur {
		case MatM:
			v = M.Get(i, j)
			d = p.delta(x[j-1], y[i-1])
			for _, k := range matrixKinds {
				if v == add(algn.matrix(k).Get(i-1, j-1), d) {
					cur, found = k, true
					break
				}
			}
			if x[j-1] == y[i-1] {
				r.Add(OpMatch)
			} else {
				r.Add(OpMismatch)
			}
			i--
			j--
		case MatGapInY:
			v = Y.Get(i, j)
			if v == sub(M.Get(i-1, j), p.GapOpen) {
				cur, found = MatM, true
			} else if v == sub(Y.Get(i-1, j), p.GapExt) {
				cur, found = MatGapInY, true
			}
			r.Add(OpIns)
			i--
		case MatGapInX:
			v = X.Get(i, j)
			if v == sub(M.Get(i, j-1), p.GapOpen) {
				cur, found = MatM, true
			} else if v == sub(X.Get(i, j-1), p.GapExt) {
				cur, found = MatGapInX, true
			}
			r.Add(OpDel)
			j--
		}

		if !found {
			RecycleAlignmentResult(r)
			return nil, fmt.Errorf("%w: no predecessor for %s[%d][%d]=%d",
				ErrInconsistentMatrix, cur, ci, cj, v)
		}
	}

	// the rest of y against gaps in x, or the rest of x against gaps in y.
	r.AddN(OpIns, uint32(i))
	r.AddN(OpDel, uint32(j))

	r.process()
	return r, nil
}
