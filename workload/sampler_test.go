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
	"testing"

	"github.com/0xsoniclabs/bvbench/bitvector"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func newTestSampler(t *testing.T, bits string, seed int64) *Sampler {
	t.Helper()
	bv, err := bitvector.Parse(bits)
	require.NoError(t, err)
	return NewSampler(NewIndex(bv), rand.New(rand.NewSource(seed)))
}

func TestSampler_QueriesAreValid(t *testing.T) {
	bv, err := bitvector.Synthesize(1000, 7)
	require.NoError(t, err)
	idx := NewIndex(bv)
	counts := [2]int{idx.Count(0), idx.Count(1)}

	for _, qt := range Types {
		s := NewSampler(idx, rand.New(rand.NewSource(11)))
		queries, err := s.Generate(qt, 2000)
		require.NoError(t, err, qt)
		require.Len(t, queries, 2000)
		for _, q := range queries {
			require.NoError(t, q.check(bv.Len(), counts), "%v: %v", qt, q)
			switch q.Kind {
			case Access, Rank:
				// sampled bounds never reach n
				require.Less(t, q.Arg, bv.Len())
			}
		}
	}
}

func TestSampler_TypeDeterminesKind(t *testing.T) {
	s := newTestSampler(t, "0110100101", 3)
	for qt, kind := range map[Type]Kind{AccessType: Access, RankType: Rank, SelectType: Select} {
		queries, err := s.Generate(qt, 50)
		require.NoError(t, err)
		for _, q := range queries {
			assert.Equal(t, kind, q.Kind)
		}
	}
}

func TestSampler_MixedWorkloadHasOnlyConcreteKinds(t *testing.T) {
	s := newTestSampler(t, "0110100101", 5)
	queries, err := s.Generate(MixedType, 10)
	require.NoError(t, err)
	require.Len(t, queries, 10)

	wl := &Workload{Bits: mustParse(t, "0110100101"), Queries: queries}
	for _, q := range wl.Queries {
		line := q.String()
		assert.NotContains(t, line, "mixed")
		assert.Regexp(t, `^(access \d+|rank [01] \d+|select [01] \d+)$`, line)
	}
}

func TestSampler_MixedUsesAllKinds(t *testing.T) {
	s := newTestSampler(t, "0110100101", 5)
	queries, err := s.Generate(MixedType, 300)
	require.NoError(t, err)
	seen := map[Kind]int{}
	for _, q := range queries {
		seen[q.Kind]++
	}
	assert.Len(t, seen, 3)
}

func TestSampler_MixedRespectsCustomMix(t *testing.T) {
	s := newTestSampler(t, "0110100101", 5)
	require.NoError(t, s.SetMix(Mix{0, 0, 1}))
	queries, err := s.Generate(MixedType, 100)
	require.NoError(t, err)
	for _, q := range queries {
		assert.Equal(t, Select, q.Kind)
	}

	err = s.SetMix(Mix{0.5, 0.5, 0.5})
	assert.True(t, errors.Is(err, ErrInvalidMix))
}

func TestSampler_SelectOnEmptyBitClassFails(t *testing.T) {
	s := newTestSampler(t, "1111", 1)
	_, err := s.SelectFor(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyBitClass))

	q, err := s.SelectFor(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), q.Bit)
	assert.True(t, q.Arg >= 1 && q.Arg <= 4)

	_, err = s.Generate(SelectType, 100)
	assert.True(t, errors.Is(err, ErrEmptyBitClass))
}

func TestSampler_AccessAndRankOnDegenerateVectorSucceed(t *testing.T) {
	s := newTestSampler(t, "0000", 1)
	_, err := s.Generate(AccessType, 100)
	assert.NoError(t, err)
	_, err = s.Generate(RankType, 100)
	assert.NoError(t, err)
}

func TestSampler_InvalidArguments(t *testing.T) {
	s := newTestSampler(t, "0101", 1)
	_, err := s.Generate("delete", 10)
	assert.True(t, errors.Is(err, ErrInvalidQueryType))
	_, err = s.Sample("delete")
	assert.True(t, errors.Is(err, ErrInvalidQueryType))
	_, err = s.Generate(AccessType, -1)
	assert.True(t, errors.Is(err, ErrInvalidQueryCount))

	queries, err := s.Generate(AccessType, 0)
	require.NoError(t, err)
	assert.Empty(t, queries)
}

func TestSampler_SameSeedSameQueries(t *testing.T) {
	a, err := newTestSampler(t, "0110100101", 9).Generate(MixedType, 100)
	require.NoError(t, err)
	b, err := newTestSampler(t, "0110100101", 9).Generate(MixedType, 100)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSampler_AccessPositionsAreUniform runs a chi-square goodness-of-fit
// test on the sampled access positions.
func TestSampler_AccessPositionsAreUniform(t *testing.T) {
	const n = 16
	const draws = 32000
	s := newTestSampler(t, "0110100101101001", 21)
	queries, err := s.Generate(AccessType, draws)
	require.NoError(t, err)

	observed := make([]float64, n)
	for _, q := range queries {
		observed[q.Arg]++
	}
	expected := float64(draws) / n
	chi2 := 0.0
	for _, o := range observed {
		chi2 += (o - expected) * (o - expected) / expected
	}
	pValue := 1.0 - distuv.ChiSquared{K: n - 1}.CDF(chi2)
	assert.Greater(t, pValue, 1e-6, "chi2=%v", chi2)
}

// TestSampler_SelectRanksAreUniform checks the ranks of select queries
// for a fixed bit cover [1, count(b)] uniformly.
func TestSampler_SelectRanksAreUniform(t *testing.T) {
	s := newTestSampler(t, "0111111110", 4)
	const draws = 16000
	observed := make([]float64, 8)
	for i := 0; i < draws; i++ {
		q, err := s.SelectFor(1)
		require.NoError(t, err)
		observed[q.Arg-1]++
	}
	expected := float64(draws) / 8
	chi2 := 0.0
	for _, o := range observed {
		chi2 += (o - expected) * (o - expected) / expected
	}
	pValue := 1.0 - distuv.ChiSquared{K: 7}.CDF(chi2)
	assert.Greater(t, pValue, 1e-6, "chi2=%v", chi2)
}

func mustParse(t *testing.T, s string) *bitvector.BitVector {
	t.Helper()
	bv, err := bitvector.Parse(s)
	require.NoError(t, err)
	return bv
}
