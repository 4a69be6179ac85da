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

package bitvector

import (
	"math"
	"math/bits"
	"math/rand"
	"strings"

	"github.com/cockroachdb/errors"
)

// MaxLength is the largest supported bit-vector length. Positions must
// fit the 32-bit index space used for position sets.
const MaxLength = math.MaxUint32

var (
	// ErrInvalidLength is returned for non-positive or oversized lengths.
	ErrInvalidLength = errors.New("invalid bit-vector length")
	// ErrInvalidSymbol is returned when parsing a string with symbols other than '0' and '1'.
	ErrInvalidSymbol = errors.New("invalid bit-vector symbol")
)

// BitVector is an immutable sequence of bits packed into 64-bit words.
// Bit i lives in word i/64 at offset i%64.
type BitVector struct {
	words []uint64
	n     int
}

// Synthesize produces the bit-vector identified by (n, seed). Calls with
// identical arguments yield identical bit-vectors, also across processes.
func Synthesize(n int, seed int64) (*BitVector, error) {
	return Generate(n, rand.New(rand.NewSource(seed)))
}

// Generate draws n independent fair bits from the given random source.
func Generate(n int, rg *rand.Rand) (*BitVector, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	bv := newBitVector(n)
	for i := 0; i < n; i++ {
		if rg.Intn(2) == 1 {
			bv.set(i)
		}
	}
	return bv, nil
}

// Parse converts a string of '0' and '1' symbols into a bit-vector.
func Parse(s string) (*BitVector, error) {
	if err := checkLength(len(s)); err != nil {
		return nil, err
	}
	bv := newBitVector(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bv.set(i)
		default:
			return nil, errors.Wrapf(ErrInvalidSymbol, "symbol %q at position %d", s[i], i)
		}
	}
	return bv, nil
}

func checkLength(n int) error {
	if n <= 0 || uint64(n) > MaxLength {
		return errors.Wrapf(ErrInvalidLength, "length %d", n)
	}
	return nil
}

func newBitVector(n int) *BitVector {
	return &BitVector{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

func (bv *BitVector) set(i int) {
	bv.words[i/64] |= 1 << (uint(i) % 64)
}

// Len returns the number of bits.
func (bv *BitVector) Len() int {
	return bv.n
}

// Bit returns the value of bit i. It panics if i is out of range.
func (bv *BitVector) Bit(i int) uint8 {
	if i < 0 || i >= bv.n {
		panic(errors.Newf("bit index %d out of range [0, %d)", i, bv.n))
	}
	return uint8(bv.words[i/64]>>(uint(i)%64)) & 1
}

// Count returns the number of bits equal to b.
func (bv *BitVector) Count(b uint8) int {
	ones := 0
	for _, w := range bv.words {
		ones += bits.OnesCount64(w)
	}
	if b == 1 {
		return ones
	}
	return bv.n - ones
}

// String renders the bit-vector as a contiguous string of '0' and '1'.
func (bv *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(bv.n)
	for i := 0; i < bv.n; i++ {
		sb.WriteByte('0' + bv.Bit(i))
	}
	return sb.String()
}

// Equal reports whether both bit-vectors hold the same bits.
func (bv *BitVector) Equal(other *BitVector) bool {
	if bv.n != other.n {
		return false
	}
	for i := range bv.words {
		if bv.words[i] != other.words[i] {
			return false
		}
	}
	return true
}
