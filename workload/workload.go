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
	"math/rand"

	"github.com/0xsoniclabs/bvbench/bitvector"
)

// Workload is an ordered batch of queries targeting one bit-vector.
type Workload struct {
	Bits    *bitvector.BitVector
	Queries []Query
}

// Len returns the number of queries k.
func (wl *Workload) Len() int {
	return len(wl.Queries)
}

// QuerySeed derives the seed of the query stream of a workload from the
// seed of its bit-vector (splitmix64 finalizer), keeping the two streams
// apart.
func QuerySeed(seed int64) int64 {
	z := uint64(seed) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// Generator produces workloads of various types and sizes over the
// bit-vector identified by (n, seed). Each call restarts the query
// stream, so the workload for k queries is a prefix of the workload for
// any larger k of the same type.
type Generator struct {
	bits *bitvector.BitVector
	idx  *Index
	seed int64
	mix  Mix
}

// NewGenerator synthesizes and indexes the bit-vector for (n, seed).
func NewGenerator(n int, seed int64) (*Generator, error) {
	bits, err := bitvector.Synthesize(n, seed)
	if err != nil {
		return nil, err
	}
	return NewGeneratorFor(bits, seed), nil
}

// NewGeneratorFor creates a generator for an existing bit-vector. The
// seed only drives the query stream.
func NewGeneratorFor(bits *bitvector.BitVector, seed int64) *Generator {
	return &Generator{
		bits: bits,
		idx:  NewIndex(bits),
		seed: seed,
		mix:  UniformMix,
	}
}

// SetMix sets the kind distribution used for mixed workloads.
func (g *Generator) SetMix(m Mix) error {
	if err := m.Check(); err != nil {
		return err
	}
	g.mix = m
	return nil
}

// Bits returns the generator's bit-vector.
func (g *Generator) Bits() *bitvector.BitVector {
	return g.bits
}

// Workload samples k queries of type t.
func (g *Generator) Workload(t Type, k int) (*Workload, error) {
	s := NewSampler(g.idx, rand.New(rand.NewSource(QuerySeed(g.seed))))
	if err := s.SetMix(g.mix); err != nil {
		return nil, err
	}
	queries, err := s.Generate(t, k)
	if err != nil {
		return nil, err
	}
	return &Workload{Bits: g.bits, Queries: queries}, nil
}
