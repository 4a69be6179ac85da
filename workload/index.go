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

package workload

import (
	"github.com/0xsoniclabs/bvbench/bitvector"
	"github.com/RoaringBitmap/roaring/v2"
)

// Index holds the ordered positions of the 0-bits and the 1-bits of a
// bit-vector. It is derived data and only used to bound select sampling.
type Index struct {
	positions [2]*roaring.Bitmap
	n         int
}

// NewIndex partitions the positions of bv by bit value.
func NewIndex(bv *bitvector.BitVector) *Index {
	ones := roaring.New()
	for i := 0; i < bv.Len(); i++ {
		if bv.Bit(i) == 1 {
			ones.Add(uint32(i))
		}
	}
	zeros := roaring.Flip(ones, 0, uint64(bv.Len()))
	ones.RunOptimize()
	zeros.RunOptimize()
	return &Index{
		positions: [2]*roaring.Bitmap{zeros, ones},
		n:         bv.Len(),
	}
}

// Len returns the length of the indexed bit-vector.
func (x *Index) Len() int {
	return x.n
}

// Count returns the number of positions holding bit b (0 or 1).
func (x *Index) Count(b uint8) int {
	return int(x.positions[b&1].GetCardinality())
}

// Positions returns the strictly increasing positions holding bit b.
func (x *Index) Positions(b uint8) []uint32 {
	return x.positions[b&1].ToArray()
}
