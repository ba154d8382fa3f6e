// SPDX-License-Identifier: MIT
// Package: hopdist/loader
//
// pairs.go - PairReader: streaming (a, b) integer records.
//
// Contract:
//   • One record per line; see package doc for the acceptance rule.
//   • Integers must fit in 63 bits so they are valid non-negative int IDs.
//   • All() is single-use: it drains the underlying reader.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// PairReader scans integer pairs from r.
type PairReader struct {
	sc      *bufio.Scanner
	err     error
	records int
	skipped int
}

// NewPairReader wraps r.
func NewPairReader(r io.Reader) *PairReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &PairReader{sc: sc}
}

// All yields every accepted record in file order. Iteration stops early
// when the consumer breaks; scan errors are reported by Err afterwards.
func (p *PairReader) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for p.sc.Scan() {
			a, b, ok := parsePair(p.sc.Text())
			if !ok {
				p.skipped++
				continue
			}
			p.records++
			if !yield(a, b) {
				return
			}
		}
		if err := p.sc.Err(); err != nil {
			p.err = fmt.Errorf("loader: scan: %w", err)
		}
	}
}

// Err returns the first I/O error seen by All.
func (p *PairReader) Err() error { return p.err }

// Records returns the number of accepted lines.
func (p *PairReader) Records() int { return p.records }

// Skipped returns the number of rejected lines.
func (p *PairReader) Skipped() int { return p.skipped }

// parsePair keeps only tokens that parse as non-negative integers and
// accepts the line iff exactly two remain.
func parsePair(line string) (int, int, bool) {
	var vals [2]int
	n := 0
	for _, tok := range strings.Fields(line) {
		v, err := strconv.ParseUint(tok, 10, 63)
		if err != nil {
			continue
		}
		if n == 2 {
			return 0, 0, false
		}
		vals[n] = int(v)
		n++
	}
	if n != 2 {
		return 0, 0, false
	}
	return vals[0], vals[1], true
}
