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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/bvbench/bitvector"
	"github.com/cockroachdb/errors"
)

// Write serializes the workload as
//
//	<k>
//	<bits>
//	<query_1>
//	...
//	<query_k>
//
// Lines are separated by '\n'; the last query line is not terminated.
func Write(w io.Writer, wl *Workload) error {
	bw := bufio.NewWriter(w)
	buf := strconv.AppendInt(nil, int64(len(wl.Queries)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	if _, err := bw.WriteString(wl.Bits.String()); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for i, q := range wl.Queries {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = q.AppendTo(buf)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a serialized workload. A trailing newline after the last
// query is accepted. Every query must be satisfiable by the bit-vector.
func Read(r io.Reader) (*Workload, error) {
	br := bufio.NewReader(r)

	header, ok, err := readLine(br)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrMalformedWorkload, "missing query count")
	}
	k, err := strconv.Atoi(header)
	if err != nil || k < 0 {
		return nil, errors.Wrapf(ErrMalformedWorkload, "invalid query count %q", header)
	}

	line, ok, err := readLine(br)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrMalformedWorkload, "missing bit-vector")
	}
	bits, err := bitvector.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedWorkload, "bit-vector line: %v", err)
	}
	counts := [2]int{bits.Count(0), bits.Count(1)}

	queries := make([]Query, 0, k)
	for len(queries) < k {
		line, ok, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(ErrMalformedWorkload, "declared %d queries, found %d", k, len(queries))
		}
		q, err := ParseQuery(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", len(queries)+3)
		}
		if err := q.check(bits.Len(), counts); err != nil {
			return nil, errors.Wrapf(ErrMalformedWorkload, "line %d: %v", len(queries)+3, err)
		}
		queries = append(queries, q)
	}

	for {
		line, ok, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if line != "" {
			return nil, errors.Wrapf(ErrMalformedWorkload, "declared %d queries, found more", k)
		}
	}
	return &Workload{Bits: bits, Queries: queries}, nil
}

// readLine returns the next line without its terminator. ok is false at
// the end of the input.
func readLine(br *bufio.Reader) (string, bool, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}
	} else if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}
