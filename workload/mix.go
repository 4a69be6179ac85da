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
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Mix is the probability mass function of the query kinds drawn for a
// mixed workload, indexed by Access, Rank and Select.
type Mix [len(kinds)]float64

// UniformMix draws access, rank and select with equal probability.
var UniformMix = Mix{1.0 / 3, 1.0 / 3, 1.0 / 3}

const mixEps = 1e-9

// ParseMix parses a comma separated list of three probabilities, e.g.
// "0.5,0.25,0.25". An empty string yields UniformMix.
func ParseMix(s string) (Mix, error) {
	if strings.TrimSpace(s) == "" {
		return UniformMix, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != len(kinds) {
		return Mix{}, errors.Wrapf(ErrInvalidMix, "expected %d probabilities, got %d", len(kinds), len(parts))
	}
	var m Mix
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Mix{}, errors.Wrapf(ErrInvalidMix, "probability %q", p)
		}
		m[i] = v
	}
	if err := m.Check(); err != nil {
		return Mix{}, err
	}
	return m, nil
}

// Check verifies that all probabilities are in [0,1] and sum to one.
func (m Mix) Check() error {
	total := 0.0
	for i, p := range m {
		if p < 0.0 || p > 1.0 || math.IsNaN(p) {
			return errors.Wrapf(ErrInvalidMix, "probability %v of %v", p, kinds[i])
		}
		total += p
	}
	if math.Abs(total-1.0) > mixEps {
		return errors.Wrapf(ErrInvalidMix, "total is not one (%v)", total)
	}
	return nil
}

// kind maps a uniform draw u in [0,1) to a query kind by inverting the
// cumulative distribution. Kahan summation keeps the boundaries exact
// for the uniform mix.
func (m Mix) kind(u float64) Kind {
	sum, c := 0.0, 0.0
	last := -1
	for i, p := range m {
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if u < sum {
			return kinds[i]
		}
		if p > 0 {
			last = i
		}
	}
	if last == -1 {
		return kinds[0]
	}
	return kinds[last]
}

func (m Mix) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
