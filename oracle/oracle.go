// Copyright 2026 Sonic Labs
// This file is part of Bvbench, the bit-vector workload and benchmark toolkit
//
// Bvbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bvbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Bvbench. If not, see <http://www.gnu.org/licenses/>.

// Package oracle answers access, rank and select queries by scanning the
// bit string directly. It shares no code with the workload sampler or
// any indexed structure and serves as ground truth for implementations
// under test.
package oracle

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidSelectArgument is returned when the rank of a select
	// query is smaller than one or exceeds the occurrences of the bit.
	ErrInvalidSelectArgument = errors.New("invalid select argument")
	// ErrIndexOutOfRange is returned for positions outside the bit string.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidBit is returned for bit values other than '0' and '1'.
	ErrInvalidBit = errors.New("invalid bit")
)

// Access returns the bit at position i, 0 <= i < len(bits).
func Access(bits string, i int) (int, error) {
	if i < 0 || i >= len(bits) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "access(%d) on %d bits", i, len(bits))
	}
	switch bits[i] {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	}
	return 0, errors.Wrapf(ErrInvalidBit, "symbol %q at position %d", bits[i], i)
}

// Rank returns the number of occurrences of b in bits[0:i]. The bound i
// is exclusive, so Rank(bits, b, 0) is always 0.
func Rank(bits string, b byte, i int) (int, error) {
	if err := checkBit(b); err != nil {
		return 0, err
	}
	if i < 0 || i > len(bits) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "rank(%c, %d) on %d bits", b, i, len(bits))
	}
	count := 0
	for j := 0; j < i; j++ {
		if bits[j] == b {
			count++
		}
	}
	return count, nil
}

// Select returns the position of the r-th (1-based) occurrence of b.
func Select(bits string, b byte, r int) (int, error) {
	if err := checkBit(b); err != nil {
		return 0, err
	}
	if r < 1 {
		return 0, errors.Wrapf(ErrInvalidSelectArgument, "select(%c, %d)", b, r)
	}
	count := 0
	for j := 0; j < len(bits); j++ {
		if bits[j] == b {
			count++
			if count == r {
				return j, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrInvalidSelectArgument, "select(%c, %d) with only %d occurrences", b, r, count)
}

func checkBit(b byte) error {
	if b != '0' && b != '1' {
		return errors.Wrapf(ErrInvalidBit, "%q", b)
	}
	return nil
}
