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

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidQueryType is returned for an unknown query type selector.
	ErrInvalidQueryType = errors.New("invalid query type")
	// ErrEmptyBitClass is returned when a select query is sampled for a
	// bit value that does not occur in the bit-vector.
	ErrEmptyBitClass = errors.New("empty bit class")
	// ErrInvalidQueryCount is returned for a negative number of queries.
	ErrInvalidQueryCount = errors.New("invalid query count")
	// ErrInvalidMix is returned for a malformed mixed-workload distribution.
	ErrInvalidMix = errors.New("invalid query mix")
	// ErrMalformedWorkload is returned when a serialized workload cannot be parsed.
	ErrMalformedWorkload = errors.New("malformed workload")
)
