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

package oracle

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/cockroachdb/errors"
)

var (
	// ErrAnswerMismatch is returned when answers differ from the oracle's.
	ErrAnswerMismatch = errors.New("answer mismatch")
	// ErrMalformedAnswers is returned when an answer file cannot be parsed.
	ErrMalformedAnswers = errors.New("malformed answers")
)

// Answer computes the correct answer of a single workload query.
func Answer(bits string, q workload.Query) (int, error) {
	switch q.Kind {
	case workload.Access:
		return Access(bits, q.Arg)
	case workload.Rank:
		return Rank(bits, '0'+q.Bit, q.Arg)
	case workload.Select:
		return Select(bits, '0'+q.Bit, q.Arg)
	}
	return 0, errors.Newf("unknown query kind %v", q.Kind)
}

// Answers computes the answers of all queries, in query order.
func Answers(bits string, queries []workload.Query) ([]int, error) {
	res := make([]int, 0, len(queries))
	for i, q := range queries {
		a, err := Answer(bits, q)
		if err != nil {
			return nil, errors.Wrapf(err, "query %d (%v)", i+1, q)
		}
		res = append(res, a)
	}
	return res, nil
}

// WriteAnswers writes one decimal answer per line.
func WriteAnswers(w io.Writer, answers []int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, a := range answers {
		buf = strconv.AppendInt(buf[:0], int64(a), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadAnswers reads one decimal answer per line. The last line does not
// need to be terminated; empty trailing lines are ignored.
func ReadAnswers(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []int{}, nil
	}
	res := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedAnswers, "line %d: %q", i+1, line)
		}
		res = append(res, v)
	}
	return res, nil
}

// Compare checks actual answers against the expected ones and reports
// the first deviation.
func Compare(expected, actual []int) error {
	for i := 0; i < len(expected) && i < len(actual); i++ {
		if expected[i] != actual[i] {
			return errors.Wrapf(ErrAnswerMismatch, "answer %d: expected %d, got %d", i+1, expected[i], actual[i])
		}
	}
	if len(expected) != len(actual) {
		return errors.Wrapf(ErrAnswerMismatch, "expected %d answers, got %d", len(expected), len(actual))
	}
	return nil
}
