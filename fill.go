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

// delta returns the score of aligning a to b.
func (p *Penalties) delta(a, b byte) int {
	if a == b {
		return p.Match
	}
	return -p.Mismatch
}

// fill initializes the boundaries of the three matrices and fills the rest.
func (algn *Aligner) fill(x, y []byte) {
	p := algn.p
	n, m := len(x), len(y)

	M := algn.M
	Y := algn.GapInY
	X := algn.GapInX
	M.resize(m+1, n+1)
	Y.resize(m+1, n+1)
	X.resize(m+1, n+1)

	// M: only M[0][0] is reachable on the boundaries.
	M.Set(0, 0, 0)
	for i := 1; i <= m; i++ {
		M.Set(i, 0, NegInf)
	}
	for j := 1; j <= n; j++ {
		M.Set(0, j, NegInf)
	}

	// GapInX: horizontal moves, the first column is unreachable,
	// the first row opens a gap once and extends it.
	for i := 0; i <= m; i++ {
		X.Set(i, 0, NegInf)
	}
	for j := 1; j <= n; j++ {
		X.Set(0, j, gapFrom(X.Get(0, j-1), p))
	}

	// GapInY: vertical moves, mirror of GapInX.
	for j := 0; j <= n; j++ {
		Y.Set(0, j, NegInf)
	}
	for i := 1; i <= m; i++ {
		Y.Set(i, 0, gapFrom(Y.Get(i-1, 0), p))
	}

	var d int
	var b byte
	for i := 1; i <= m; i++ {
		b = y[i-1]
		for j := 1; j <= n; j++ {
			d = p.delta(x[j-1], b)

			M.Set(i, j, add(max(M.Get(i-1, j-1), Y.Get(i-1, j-1), X.Get(i-1, j-1)), d))

			X.Set(i, j, max(sub(M.Get(i, j-1), p.GapOpen), sub(X.Get(i, j-1), p.GapExt)))

			Y.Set(i, j, max(sub(M.Get(i-1, j), p.GapOpen), sub(Y.Get(i-1, j), p.GapExt)))
		}
	}
}

// gapFrom returns the score of a boundary gap cell from its previous cell:
// opening if the previous one is unreachable, extending otherwise.
func gapFrom(prev int, p *Penalties) int {
	if prev == NegInf {
		return -p.GapOpen
	}
	return prev - p.GapExt
}
