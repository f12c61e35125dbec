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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKMers(t *testing.T) {
	assert.Equal(t, []string{"ACG", "CGT", "GTA", "TTT"}, KMers(3, "ACGTA", "GG", "TTT"))
	assert.Equal(t, []string{"A", "C"}, KMers(1, "AC"))
	assert.Empty(t, KMers(4, "ACG"))
	assert.Nil(t, KMers(0, "ACG"))
	assert.Empty(t, KMers(3))
}

func TestPrefixesSuffixes(t *testing.T) {
	kmers := KMers(3, "ACGT")
	assert.Equal(t, []string{"AC", "CG", "CG", "GT"}, PrefixesSuffixes(kmers))
	assert.Empty(t, PrefixesSuffixes(nil))
	assert.Equal(t, []string{"", ""}, PrefixesSuffixes([]string{"A"}))
}
