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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_Resize checks that the storage is reused and zeroed.
func TestMatrix_Resize(t *testing.T) {
	mat := NewMatrix(2, 3)
	require.Equal(t, 6, len(mat.Data))
	assert.Equal(t, MATRIX_BASE_SIZE, cap(mat.Data))

	mat.Set(1, 2, 7)
	assert.Equal(t, 7, mat.Get(1, 2))
	assert.Equal(t, 7, mat.Data[5])

	mat.resize(3, 2)
	assert.Equal(t, 3, mat.Rows)
	assert.Equal(t, 2, mat.Cols)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, mat.Data)

	mat.resize(100, 100)
	assert.Equal(t, 10000, len(mat.Data))
	assert.Equal(t, 3*MATRIX_BASE_SIZE, cap(mat.Data))

	assert.True(t, mat.In(99, 99))
	assert.False(t, mat.In(100, 0))
	assert.False(t, mat.In(0, -1))
}

// TestMatrix_Saturation checks that NegInf absorbs penalties of any sign.
func TestMatrix_Saturation(t *testing.T) {
	assert.Equal(t, NegInf, add(NegInf, 5))
	assert.Equal(t, NegInf, add(NegInf, -5))
	assert.Equal(t, NegInf, sub(NegInf, 5))
	assert.Equal(t, NegInf, sub(NegInf, -5))
	assert.Equal(t, 3, add(1, 2))
	assert.Equal(t, -1, sub(1, 2))
	assert.Equal(t, 4, max(NegInf, sub(1, -3)))
}

func TestMatrix_Print(t *testing.T) {
	mat := NewMatrix(2, 2)
	mat.Set(0, 1, NegInf)
	mat.Set(1, 0, -2)
	mat.Set(1, 1, 5)

	var buf bytes.Buffer
	mat.Print(&buf, "M")
	assert.Equal(t, "M0: 0 -inf\nM1: -2 5\n", buf.String())
}
