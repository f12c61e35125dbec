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

// KMers returns all the substrings of length k of every sequence,
// from left to right and in the order of the sequences.
// It returns nil if k < 1.
func KMers(k int, seqs ...string) []string {
	if k < 1 {
		return nil
	}
	var n int
	for _, s := range seqs {
		if len(s) >= k {
			n += len(s) - k + 1
		}
	}
	kmers := make([]string, 0, n)
	for _, s := range seqs {
		for i := 0; i+k <= len(s); i++ {
			kmers = append(kmers, s[i:i+k])
		}
	}
	return kmers
}

// PrefixesSuffixes returns the (k-1)-prefixes of all k-mers,
// followed by their (k-1)-suffixes.
func PrefixesSuffixes(kmers []string) []string {
	presuf := make([]string, 0, len(kmers)<<1)
	for _, kmer := range kmers {
		if len(kmer) > 0 {
			presuf = append(presuf, kmer[:len(kmer)-1])
		}
	}
	for _, kmer := range kmers {
		if len(kmer) > 0 {
			presuf = append(presuf, kmer[1:])
		}
	}
	return presuf
}
