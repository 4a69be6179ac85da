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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind is the kind of a query as it appears on the wire.
type Kind uint8

const (
	Access Kind = iota
	Rank
	Select
)

// kinds lists all query kinds in the order used by Mix.
var kinds = [...]Kind{Access, Rank, Select}

func (k Kind) String() string {
	switch k {
	case Access:
		return "access"
	case Rank:
		return "rank"
	case Select:
		return "select"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Query is a single access, rank or select query.
//
// For Access, Arg is the position i. For Rank, Arg is the exclusive
// upper bound i. For Select, Arg is the 1-based rank r. Bit is ignored
// for Access.
type Query struct {
	Kind Kind
	Bit  uint8
	Arg  int
}

// NewAccess returns access(i).
func NewAccess(i int) Query {
	return Query{Kind: Access, Arg: i}
}

// NewRank returns rank(b, i).
func NewRank(b uint8, i int) Query {
	return Query{Kind: Rank, Bit: b, Arg: i}
}

// NewSelect returns select(b, r).
func NewSelect(b uint8, r int) Query {
	return Query{Kind: Select, Bit: b, Arg: r}
}

// String renders the query line, e.g. "rank 1 42".
func (q Query) String() string {
	return string(q.AppendTo(nil))
}

// AppendTo appends the rendered query line to buf.
func (q Query) AppendTo(buf []byte) []byte {
	buf = append(buf, q.Kind.String()...)
	if q.Kind != Access {
		buf = append(buf, ' ', '0'+q.Bit)
	}
	buf = append(buf, ' ')
	return strconv.AppendInt(buf, int64(q.Arg), 10)
}

// ParseQuery parses a single query line.
func ParseQuery(line string) (Query, error) {
	fields := strings.Split(line, " ")
	switch fields[0] {
	case "access":
		if len(fields) != 2 {
			return Query{}, errors.Wrapf(ErrMalformedWorkload, "access expects one argument: %q", line)
		}
		i, err := parseArg(fields[1])
		if err != nil {
			return Query{}, errors.Wrapf(err, "query %q", line)
		}
		return NewAccess(i), nil
	case "rank", "select":
		if len(fields) != 3 {
			return Query{}, errors.Wrapf(ErrMalformedWorkload, "%s expects two arguments: %q", fields[0], line)
		}
		b, err := parseBit(fields[1])
		if err != nil {
			return Query{}, errors.Wrapf(err, "query %q", line)
		}
		arg, err := parseArg(fields[2])
		if err != nil {
			return Query{}, errors.Wrapf(err, "query %q", line)
		}
		if fields[0] == "rank" {
			return NewRank(b, arg), nil
		}
		return NewSelect(b, arg), nil
	default:
		return Query{}, errors.Wrapf(ErrMalformedWorkload, "unknown query %q", line)
	}
}

func parseBit(s string) (uint8, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	}
	return 0, errors.Wrapf(ErrMalformedWorkload, "invalid bit %q", s)
}

func parseArg(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedWorkload, "invalid integer %q", s)
	}
	return v, nil
}

// check verifies the query is answerable for a bit-vector of length n
// holding counts[b] bits of value b.
func (q Query) check(n int, counts [2]int) error {
	switch q.Kind {
	case Access:
		if q.Arg < 0 || q.Arg >= n {
			return errors.Newf("access position %d out of range [0, %d)", q.Arg, n)
		}
	case Rank:
		if q.Bit > 1 {
			return errors.Newf("rank bit %d is not binary", q.Bit)
		}
		if q.Arg < 0 || q.Arg > n {
			return errors.Newf("rank bound %d out of range [0, %d]", q.Arg, n)
		}
	case Select:
		if q.Bit > 1 {
			return errors.Newf("select bit %d is not binary", q.Bit)
		}
		if q.Arg < 1 || q.Arg > counts[q.Bit] {
			return errors.Newf("select rank %d out of range [1, %d] for bit %d", q.Arg, counts[q.Bit], q.Bit)
		}
	default:
		return errors.Newf("unknown query kind %v", q.Kind)
	}
	return nil
}
