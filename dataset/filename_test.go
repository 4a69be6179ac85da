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
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName_FollowsNamingConvention(t *testing.T) {
	assert.Equal(t, "bitvector_access_n1000000_seed42_queries10000.txt", FileName(workload.AccessType, 1_000_000, 42, 10_000, false))
	assert.Equal(t, "bitvector_mixed_n8_seed1_queries10.txt.gz", FileName(workload.MixedType, 8, 1, 10, true))
	assert.Equal(t, "expected_rank_n8_seed-3_queries2.txt", ExpectedFileName(workload.RankType, 8, -3, 2, false))
}

func TestParseFileName_RecoversParameters(t *testing.T) {
	tests := []struct {
		path string
		want FileInfo
	}{
		{
			path: "./dataset/bitvector_select_n1000_seed42_queries200.txt",
			want: FileInfo{Type: workload.SelectType, N: 1000, Seed: 42, K: 200},
		},
		{
			path: "bitvector_mixed_n8_seed-1_queries0.txt.gz",
			want: FileInfo{Type: workload.MixedType, N: 8, Seed: -1, K: 0, Compressed: true},
		},
		{
			path: "/tmp/expected_access_n5_seed7_queries3.txt",
			want: FileInfo{Type: workload.AccessType, N: 5, Seed: 7, K: 3, Expected: true},
		},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			got, err := ParseFileName(test.path)
			require.NoError(t, err)
			test.want.Path = test.path
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseFileName_RoundTrip(t *testing.T) {
	for _, typ := range workload.Types {
		for _, compressed := range []bool{false, true} {
			name := FileName(typ, 123, 9, 45, compressed)
			got, err := ParseFileName(name)
			require.NoError(t, err)
			assert.Equal(t, FileInfo{Path: name, Type: typ, N: 123, Seed: 9, K: 45, Compressed: compressed}, got)
		}
	}
}

func TestParseFileName_RejectsOtherNames(t *testing.T) {
	names := []string{
		"results.csv",
		"bitvector_access_n8_seed1_queries10.csv",
		"bitvector_delete_n8_seed1_queries10.txt",
		"bitvector_access_n8_queries10.txt",
		"bitvector_access_n99999999999999999999_seed1_queries10.txt",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFileName(name)
			assert.ErrorIs(t, err, ErrInvalidFileName)
		})
	}
}

func TestFileInfo_ExpectedPath(t *testing.T) {
	fi, err := ParseFileName(filepath.Join("out", "bitvector_rank_n8_seed1_queries4.txt.gz"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "expected_rank_n8_seed1_queries4.txt.gz"), fi.ExpectedPath())
}

func TestList_SortsWorkloadsAndSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"bitvector_select_n8_seed1_queries20.txt",
		"bitvector_select_n8_seed1_queries10.txt",
		"bitvector_access_n16_seed1_queries10.txt",
		"bitvector_access_n8_seed1_queries10.txt",
		"expected_access_n8_seed1_queries10.txt",
		"notes.md",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bitvector_rank_n8_seed1_queries1.txt"), 0755))

	files, err := List(dir)
	require.NoError(t, err)

	var got []string
	for _, f := range files {
		got = append(got, filepath.Base(f.Path))
	}
	assert.Equal(t, []string{
		"bitvector_access_n8_seed1_queries10.txt",
		"bitvector_access_n16_seed1_queries10.txt",
		"bitvector_select_n8_seed1_queries10.txt",
		"bitvector_select_n8_seed1_queries20.txt",
	}, got)
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
