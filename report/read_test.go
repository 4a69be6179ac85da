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

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsCSV = `query_type,input_file,k,time,space
access,bitvector_access_n8_seed1_queries10.txt,10,5,64
rank,bitvector_rank_n8_seed1_queries10.txt,10,7,64
`

func TestReadCSV_ParsesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_results_main.csv")
	require.NoError(t, os.WriteFile(path, []byte(resultsCSV), 0644))

	results, err := ReadCSV(path, "")
	require.NoError(t, err)
	assert.Equal(t, []bench.Result{
		{
			Implementation: "benchmark_results_main",
			QueryType:      workload.AccessType,
			InputFile:      "bitvector_access_n8_seed1_queries10.txt",
			K:              10,
			Measurement:    bench.Measurement{Time: 5, Space: 64},
		},
		{
			Implementation: "benchmark_results_main",
			QueryType:      workload.RankType,
			InputFile:      "bitvector_rank_n8_seed1_queries10.txt",
			K:              10,
			Measurement:    bench.Measurement{Time: 7, Space: 64},
		},
	}, results)

	results, err = ReadCSV(path, "main")
	require.NoError(t, err)
	assert.Equal(t, "main", results[0].Implementation)
}

func TestParseCSV_ValidColumnAndReorderedHeader(t *testing.T) {
	in := "k,time,space,valid,query_type,input_file\n20,9,1,false,select,f.txt\n"
	results, err := parseCSV(strings.NewReader(in), "x")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bench.Result{
		Implementation: "x",
		QueryType:      workload.SelectType,
		InputFile:      "f.txt",
		K:              20,
		Measurement:    bench.Measurement{Time: 9, Space: 1},
		Validated:      true,
		Valid:          false,
	}, results[0])
}

func TestParseCSV_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"missing column": "query_type,input_file,k,time\naccess,f,1,2\n",
		"short row":      "query_type,input_file,k,time,space\naccess,f,1,2\n",
		"bad k":          "query_type,input_file,k,time,space\naccess,f,x,2,3\n",
		"bad time":       "query_type,input_file,k,time,space\naccess,f,1,2.5,3\n",
		"bad space":      "query_type,input_file,k,time,space\naccess,f,1,2,\n",
		"bad valid":      "query_type,input_file,k,time,space,valid\naccess,f,1,2,3,maybe\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(in), "x")
			assert.ErrorIs(t, err, ErrMalformedResults)
		})
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.Error(t, err)
}

func TestReadDB_ReadsStoredResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	db.MustExec(`CREATE TABLE results (implementation TEXT, query_type TEXT, input_file TEXT, k INTEGER, time INTEGER, space INTEGER, valid BOOLEAN)`)
	db.MustExec(`INSERT INTO results VALUES ('main', 'access', 'a.txt', 10, 3, 8, NULL)`)
	db.MustExec(`INSERT INTO results VALUES ('block_based', 'mixed', 'b.txt', 20, 4, 9, 1)`)
	require.NoError(t, db.Close())

	results, err := ReadDB(path)
	require.NoError(t, err)
	assert.Equal(t, []bench.Result{
		{
			Implementation: "main",
			QueryType:      workload.AccessType,
			InputFile:      "a.txt",
			K:              10,
			Measurement:    bench.Measurement{Time: 3, Space: 8},
		},
		{
			Implementation: "block_based",
			QueryType:      workload.MixedType,
			InputFile:      "b.txt",
			K:              20,
			Measurement:    bench.Measurement{Time: 4, Space: 9},
			Validated:      true,
			Valid:          true,
		},
	}, results)
}

func TestReadDB_MissingDatabase(t *testing.T) {
	_, err := ReadDB(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
