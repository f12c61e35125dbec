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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput means the alignment input can not be parsed.
var ErrInvalidInput = errors.New("gotoh: invalid input")

// Input is a pair of sequences with the penalties to align them.
type Input struct {
	X, Y      []byte
	Penalties Penalties
}

// ReadInput reads an input of three lines:
//
//	p1 p2 g s
//	X
//	Y
//
// where p1, p2, g and s are the match score, mismatch penalty, gap open penalty
// and gap extension penalty. Missing sequence lines are read as empty sequences.
func ReadInput(r io.Reader) (*Input, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<30)

	var lines [3]string
	var n int
	for n < 3 && scanner.Scan() {
		lines[n] = strings.TrimSpace(scanner.Text())
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	fields := strings.Fields(lines[0])
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: 4 scoring parameters expected in the first line, %d given",
			ErrInvalidInput, len(fields))
	}
	p, err := parsePenalties(fields)
	if err != nil {
		return nil, err
	}

	return &Input{X: []byte(lines[1]), Y: []byte(lines[2]), Penalties: p}, nil
}

// ParseArgs parses six positional arguments: X Y p1 p2 g s.
func ParseArgs(args []string) (*Input, error) {
	if len(args) != 6 {
		return nil, fmt.Errorf("%w: 6 arguments expected, %d given", ErrInvalidInput, len(args))
	}
	p, err := parsePenalties(args[2:])
	if err != nil {
		return nil, err
	}
	return &Input{X: []byte(args[0]), Y: []byte(args[1]), Penalties: p}, nil
}

func parsePenalties(fields []string) (Penalties, error) {
	var vs [4]int
	var err error
	for i, f := range fields {
		vs[i], err = strconv.Atoi(f)
		if err != nil {
			return Penalties{}, fmt.Errorf("%w: scoring parameter %q is not an integer", ErrInvalidInput, f)
		}
	}
	return Penalties{Match: vs[0], Mismatch: vs[1], GapOpen: vs[2], GapExt: vs[3]}, nil
}
