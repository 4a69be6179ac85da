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

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/cockroachdb/errors"
)

const (
	workloadPrefix = "bitvector"
	expectedPrefix = "expected"
)

// ErrInvalidFileName is returned for names not following the dataset
// naming convention.
var ErrInvalidFileName = errors.New("invalid dataset file name")

var fileNamePattern = regexp.MustCompile(`^(bitvector|expected)_([a-z]+)_n(\d+)_seed(-?\d+)_queries(\d+)\.txt(\.gz)?$`)

// FileInfo holds the parameters encoded in a dataset file name.
type FileInfo struct {
	Path       string
	Type       workload.Type
	N          int
	Seed       int64
	K          int
	Expected   bool // expected-answer file instead of a workload
	Compressed bool
}

// FileName names the workload file of k queries of type t over the
// bit-vector (n, seed).
func FileName(t workload.Type, n int, seed int64, k int, compressed bool) string {
	return fileName(workloadPrefix, t, n, seed, k, compressed)
}

// ExpectedFileName names the expected-answer file belonging to the
// workload file of the same parameters.
func ExpectedFileName(t workload.Type, n int, seed int64, k int, compressed bool) string {
	return fileName(expectedPrefix, t, n, seed, k, compressed)
}

func fileName(prefix string, t workload.Type, n int, seed int64, k int, compressed bool) string {
	name := fmt.Sprintf("%s_%s_n%d_seed%d_queries%d.txt", prefix, t, n, seed, k)
	if compressed {
		name += utils.CompressedSuffix
	}
	return name
}

// ParseFileName recovers the parameters from a dataset file path.
func ParseFileName(path string) (FileInfo, error) {
	base := filepath.Base(path)
	m := fileNamePattern.FindStringSubmatch(base)
	if m == nil {
		return FileInfo{}, errors.Wrapf(ErrInvalidFileName, "%q", base)
	}
	t, err := workload.ParseType(m[2])
	if err != nil {
		return FileInfo{}, errors.Wrapf(ErrInvalidFileName, "%q: %v", base, err)
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return FileInfo{}, errors.Wrapf(ErrInvalidFileName, "%q: %v", base, err)
	}
	seed, err := strconv.ParseInt(m[4], 10, 64)
	if err != nil {
		return FileInfo{}, errors.Wrapf(ErrInvalidFileName, "%q: %v", base, err)
	}
	k, err := strconv.Atoi(m[5])
	if err != nil {
		return FileInfo{}, errors.Wrapf(ErrInvalidFileName, "%q: %v", base, err)
	}
	return FileInfo{
		Path:       path,
		Type:       t,
		N:          n,
		Seed:       seed,
		K:          k,
		Expected:   m[1] == expectedPrefix,
		Compressed: m[6] != "",
	}, nil
}

// ExpectedPath returns the path of the expected-answer file next to a
// workload file.
func (fi FileInfo) ExpectedPath() string {
	return filepath.Join(filepath.Dir(fi.Path), ExpectedFileName(fi.Type, fi.N, fi.Seed, fi.K, fi.Compressed))
}

// List returns the workload files of dir ordered by query type, length,
// seed and query count. Other files are skipped.
func List(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list dataset %v", dir)
	}
	var res []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := ParseFileName(filepath.Join(dir, e.Name()))
		if err != nil || fi.Expected {
			continue
		}
		res = append(res, fi)
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.N != b.N {
			return a.N < b.N
		}
		if a.Seed != b.Seed {
			return a.Seed < b.Seed
		}
		return a.K < b.K
	})
	return res, nil
}
