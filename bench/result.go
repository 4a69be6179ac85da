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

package bench

import (
	"strconv"
	"strings"

	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingToken is returned when the program output lacks time= or space=.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken is returned when a time= or space= value is not an integer.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidAnswers is returned after a validated run in which some
	// files were answered incorrectly.
	ErrInvalidAnswers = errors.New("program answered incorrectly")
)

const (
	timeToken  = "time="
	spaceToken = "space="
)

// Measurement is what the benchmarked program reports on stdout.
type Measurement struct {
	Time  int64
	Space int64
}

// ParseResult extracts time=<int> and space=<int> from whitespace
// separated program output. Token order does not matter, unknown tokens
// are ignored and the first occurrence of a token wins.
func ParseResult(output string) (Measurement, error) {
	var (
		m                 Measurement
		hasTime, hasSpace bool
	)
	for _, part := range strings.Fields(output) {
		switch {
		case !hasTime && strings.HasPrefix(part, timeToken):
			v, err := parseToken(part, timeToken)
			if err != nil {
				return Measurement{}, err
			}
			m.Time, hasTime = v, true
		case !hasSpace && strings.HasPrefix(part, spaceToken):
			v, err := parseToken(part, spaceToken)
			if err != nil {
				return Measurement{}, err
			}
			m.Space, hasSpace = v, true
		}
	}
	if !hasTime {
		return Measurement{}, errors.Wrapf(ErrMissingToken, "%q in %q", timeToken, output)
	}
	if !hasSpace {
		return Measurement{}, errors.Wrapf(ErrMissingToken, "%q in %q", spaceToken, output)
	}
	return m, nil
}

func parseToken(part, prefix string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(part, prefix), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidToken, "%q", part)
	}
	return v, nil
}

// Result is one benchmark row.
type Result struct {
	Implementation string
	QueryType      workload.Type
	InputFile      string // base name of the workload file
	K              int
	Measurement
	Validated bool // Valid is only meaningful when set
	Valid     bool
}

// Header returns the csv header of result rows.
func Header(validate bool) string {
	h := "query_type,input_file,k,time,space"
	if validate {
		h += ",valid"
	}
	return h
}

// CSV renders the result as a csv row matching Header.
func (r Result) CSV(validate bool) string {
	var sb strings.Builder
	sb.WriteString(string(r.QueryType))
	sb.WriteByte(',')
	sb.WriteString(r.InputFile)
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(r.K))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(r.Time, 10))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(r.Space, 10))
	if validate {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatBool(r.Valid))
	}
	return sb.String()
}

// row returns the values of the results table; valid is NULL when the
// answers were not checked.
func (r Result) row() []any {
	var valid any
	if r.Validated {
		valid = r.Valid
	}
	return []any{r.Implementation, string(r.QueryType), r.InputFile, r.K, r.Time, r.Space, valid}
}
