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
	"bytes"
	"strconv"
	"sync"
)

// AlignmentResult represent an alignment result.
type AlignmentResult struct {
	Ops   []*CIGARRecord
	Score int // Alignment score

	Start MatrixKind // the matrix where the traceback started

	// Stats of the whole alignment, including terminal gaps.
	AlignLen   uint32
	Matches    uint32
	Mismatches uint32
	Gaps       uint32
	GapRegions uint32

	proccessed bool
}

// CIGARRecord records the operation and the number.
type CIGARRecord struct {
	N  uint32
	Op byte
}

// NewAlignmentResult returns a new AlignmentResult from the object pool.
func NewAlignmentResult() *AlignmentResult {
	r := poolAlignmentResult.Get().(*AlignmentResult)
	r.reset()
	return r
}

// reset resets an AlignmentResult.
func (r *AlignmentResult) reset() {
	for _, op := range r.Ops {
		poolCIGARRecord.Put(op)
	}
	r.Ops = r.Ops[:0]
	r.Score = 0
	r.Start = MatM
	r.proccessed = false

	r.AlignLen = 0
	r.Matches = 0
	r.Mismatches = 0
	r.Gaps = 0
	r.GapRegions = 0
}

// RecycleAlignmentResult recycles an AlignmentResult object.
func RecycleAlignmentResult(r *AlignmentResult) {
	if r != nil {
		poolAlignmentResult.Put(r)
	}
}

// object pool of AlignmentResult.
var poolAlignmentResult = &sync.Pool{New: func() interface{} {
	r := AlignmentResult{
		Ops: make([]*CIGARRecord, 0, 128),
	}
	return &r
}}

// object pool of CIGARRecord.
var poolCIGARRecord = &sync.Pool{New: func() interface{} {
	return &CIGARRecord{}
}}

// Add adds a new record in backtrace.
func (r *AlignmentResult) Add(op byte) {
	r.AddN(op, 1)
}

// AddN adds a new record in backtrace and set its number as n.
func (r *AlignmentResult) AddN(op byte, n uint32) {
	if n == 0 {
		return
	}
	rec := poolCIGARRecord.Get().(*CIGARRecord)
	rec.Op = op
	rec.N = n
	r.Ops = append(r.Ops, rec)
}

// process reverses the backtrace records, merges adjacent records
// of the same operation, and computes the stats.
func (r *AlignmentResult) process() {
	if r.proccessed {
		return
	}
	s := &r.Ops

	// reverse the order of all operations.
	var i, j int
	for i, j = 0, len(*s)-1; i < j; i, j = i+1, j-1 {
		(*s)[i], (*s)[j] = (*s)[j], (*s)[i]
	}

	// merge operations of the same type.
	if len(*s) > 0 {
		j = 0
		for i = 1; i < len(*s); i++ {
			if (*s)[i].Op == (*s)[j].Op {
				(*s)[j].N += (*s)[i].N
				poolCIGARRecord.Put((*s)[i])
				continue
			}
			j++
			(*s)[j] = (*s)[i]
		}
		*s = (*s)[:j+1]
	}

	// count matches, gaps
	var prevGap byte
	for _, op := range *s {
		r.AlignLen += op.N
		switch op.Op {
		case OpMatch:
			r.Matches += op.N
			prevGap = 0
		case OpMismatch:
			r.Mismatches += op.N
			prevGap = 0
		case OpIns, OpDel:
			r.Gaps += op.N
			if op.Op != prevGap {
				r.GapRegions++
			}
			prevGap = op.Op
		}
	}

	r.proccessed = true
}

// CIGAR returns the CIGAR string.
func (r *AlignmentResult) CIGAR() string {
	r.process()
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, op := range r.Ops {
		buf.WriteString(strconv.Itoa(int(op.N)))
		buf.WriteByte(op.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

// Strings returns the aligned x and y, with GapSymbol for gaps.
// They must be the sequences given to Align.
func (r *AlignmentResult) Strings(x, y []byte) (string, string) {
	X, _, Y := r.AlignmentText(x, y)
	sx, sy := string(*X), string(*Y)
	RecycleAlignmentText(X, nil, Y)
	return sx, sy
}

// AlignmentText returns the formated alignment text for X, Alignment, and Y.
// Do not forget to recycle them with RecycleAlignmentText().
func (r *AlignmentResult) AlignmentText(x, y []byte) (*[]byte, *[]byte, *[]byte) {
	r.process()

	X := poolBytes.Get().(*[]byte)
	A := poolBytes.Get().(*[]byte)
	Y := poolBytes.Get().(*[]byte)

	var i, j int // positions in y and x
	var k uint32
	for _, op := range r.Ops {
		switch op.Op {
		case OpMatch:
			for k = 0; k < op.N; k++ {
				*X = append(*X, x[j])
				*A = append(*A, '|')
				*Y = append(*Y, y[i])
				i++
				j++
			}
		case OpMismatch:
			for k = 0; k < op.N; k++ {
				*X = append(*X, x[j])
				*A = append(*A, ' ')
				*Y = append(*Y, y[i])
				i++
				j++
			}
		case OpIns:
			for k = 0; k < op.N; k++ {
				*X = append(*X, GapSymbol)
				*A = append(*A, ' ')
				*Y = append(*Y, y[i])
				i++
			}
		case OpDel:
			for k = 0; k < op.N; k++ {
				*X = append(*X, x[j])
				*A = append(*A, ' ')
				*Y = append(*Y, GapSymbol)
				j++
			}
		}
	}

	return X, A, Y
}

var poolBytesBuffer = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 1024)
	return bytes.NewBuffer(buf)
}}

var poolBytes = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 0, 1024)
	return &buf
}}

// RecycleAlignmentText recycle alignment text.
func RecycleAlignmentText(X, A, Y *[]byte) {
	if X != nil {
		*X = (*X)[:0]
		poolBytes.Put(X)
	}
	if A != nil {
		*A = (*A)[:0]
		poolBytes.Put(A)
	}
	if Y != nil {
		*Y = (*Y)[:0]
		poolBytes.Put(Y)
	}
}
