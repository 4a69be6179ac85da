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

	"github.com/cockroachdb/errors"
)

// Sampler draws random, satisfiable queries for an indexed bit-vector.
// It owns no random state of its own; the caller provides the source.
type Sampler struct {
	idx *Index
	rg  *rand.Rand
	mix Mix
}

// NewSampler creates a sampler drawing from rg. Mixed workloads use
// UniformMix.
func NewSampler(idx *Index, rg *rand.Rand) *Sampler {
	return &Sampler{
		idx: idx,
		rg:  rg,
		mix: UniformMix,
	}
}

// SetMix installs the distribution of query kinds for mixed workloads.
func (s *Sampler) SetMix(m Mix) error {
	if err := m.Check(); err != nil {
		return err
	}
	s.mix = m
	return nil
}

// Sample draws one query of the given type. A mixed selector is resolved
// to a concrete kind with a single draw before the kind is sampled.
func (s *Sampler) Sample(t Type) (Query, error) {
	kind, err := s.resolve(t)
	if err != nil {
		return Query{}, err
	}
	switch kind {
	case Access:
		return NewAccess(s.rg.Intn(s.idx.Len())), nil
	case Rank:
		b := s.bit()
		return NewRank(b, s.rg.Intn(s.idx.Len())), nil
	default:
		return s.SelectFor(s.bit())
	}
}

// SelectFor draws select(b, r) with r uniform in [1, count(b)].
func (s *Sampler) SelectFor(b uint8) (Query, error) {
	c := s.idx.Count(b)
	if c == 0 {
		return Query{}, errors.Wrapf(ErrEmptyBitClass, "no %d-bits in bit-vector of length %d", b, s.idx.Len())
	}
	return NewSelect(b, 1+s.rg.Intn(c)), nil
}

// Generate draws k queries of the given type with replacement.
func (s *Sampler) Generate(t Type, k int) ([]Query, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrInvalidQueryCount, "%d", k)
	}
	if !t.Valid() {
		return nil, errors.Wrapf(ErrInvalidQueryType, "%q", string(t))
	}
	queries := make([]Query, 0, k)
	for len(queries) < k {
		q, err := s.Sample(t)
		if err != nil {
			return nil, errors.Wrapf(err, "query %d of %d", len(queries)+1, k)
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func (s *Sampler) resolve(t Type) (Kind, error) {
	if kind, ok := t.kind(); ok {
		return kind, nil
	}
	if t == MixedType {
		return s.mix.kind(s.rg.Float64()), nil
	}
	return 0, errors.Wrapf(ErrInvalidQueryType, "%q", string(t))
}

func (s *Sampler) bit() uint8 {
	return uint8(s.rg.Intn(2))
}
