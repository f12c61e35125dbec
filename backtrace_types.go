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

// MatrixKind tells which of the three matrices a cell or a traceback step belongs to.
type MatrixKind uint8

const (
	// MatM holds scores of alignments ending with X[j-1] aligned to Y[i-1],
	// a match or a mismatch.
	MatM MatrixKind = iota
	// MatGapInY holds scores of alignments ending with Y[i-1] aligned to a gap
	// in X, a vertical move.
	MatGapInY
	// MatGapInX holds scores of alignments ending with X[j-1] aligned to a gap
	// in Y, a horizontal move.
	MatGapInX
)

// the order here is also the tie-break priority.
var matrixKinds = [3]MatrixKind{MatM, MatGapInY, MatGapInX}

var matrixNames = [3]string{"M", "GapInY", "GapInX"}

// String returns the matrix name.
func (k MatrixKind) String() string {
	if int(k) < len(matrixNames) {
		return matrixNames[k]
	}
	return "N/A"
}

// CIGAR operations.
const (
	OpMatch    byte = 'M'
	OpMismatch byte = 'X'
	OpIns      byte = 'I' // a symbol of Y against a gap in X
	OpDel      byte = 'D' // a symbol of X against a gap in Y
)

// GapSymbol is used in aligned strings.
const GapSymbol byte = '_'

var opArrows = map[byte]rune{ // for PlotPath
	OpMatch:    '⬊',
	OpMismatch: '⬂',
	OpIns:      '↧',
	OpDel:      '⟼',
}
