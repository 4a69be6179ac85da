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
	"strings"

	"github.com/cockroachdb/errors"
)

// Type selects which kind of queries a workload contains. Mixed draws
// the kind of every query at random.
type Type string

const (
	AccessType Type = "access"
	RankType   Type = "rank"
	SelectType Type = "select"
	MixedType  Type = "mixed"
)

// Types lists all query type selectors.
var Types = []Type{AccessType, RankType, SelectType, MixedType}

// ParseType parses a query type selector.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errors.Wrapf(ErrInvalidQueryType, "%q", s)
	}
	return t, nil
}

// ParseTypes parses a list of query type selectors.
func ParseTypes(values []string) ([]Type, error) {
	res := make([]Type, 0, len(values))
	for _, v := range values {
		t, err := ParseType(v)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// Valid reports whether t is a known selector.
func (t Type) Valid() bool {
	switch t {
	case AccessType, RankType, SelectType, MixedType:
		return true
	}
	return false
}

// kind returns the fixed query kind of a non-mixed selector.
func (t Type) kind() (Kind, bool) {
	switch t {
	case AccessType:
		return Access, true
	case RankType:
		return Rank, true
	case SelectType:
		return Select, true
	}
	return 0, false
}
