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
	"database/sql"
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrMalformedResults is returned for result files that cannot be read.
var ErrMalformedResults = errors.New("malformed results")

var requiredColumns = []string{"query_type", "input_file", "k", "time", "space"}

// ReadCSV reads the result rows of a csv file written by the benchmark.
// Rows are labelled with implementation; when it is empty the file name
// without extension is used.
func ReadCSV(path string, implementation string) (results []bench.Result, err error) {
	if implementation == "" {
		base := filepath.Base(path)
		implementation = base[:len(base)-len(filepath.Ext(base))]
	}
	in, err := utils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.CombineErrors(err, in.Close())
	}()
	return parseCSV(in, implementation)
}

func parseCSV(in io.Reader, implementation string) ([]bench.Result, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrMalformedResults, "missing header")
	}
	if err != nil {
		return nil, errors.Wrap(ErrMalformedResults, err.Error())
	}
	column := make(map[string]int, len(header))
	for i, name := range header {
		column[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := column[name]; !ok {
			return nil, errors.Wrapf(ErrMalformedResults, "missing column %q", name)
		}
	}
	validColumn, hasValid := column["valid"]

	var results []bench.Result
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return results, nil
		}
		if err != nil {
			return nil, errors.Wrap(ErrMalformedResults, err.Error())
		}
		if len(record) != len(header) {
			return nil, errors.Wrapf(ErrMalformedResults, "line %d has %d fields, expected %d", line, len(record), len(header))
		}
		res := bench.Result{
			Implementation: implementation,
			QueryType:      workload.Type(record[column["query_type"]]),
			InputFile:      record[column["input_file"]],
		}
		if res.K, err = strconv.Atoi(record[column["k"]]); err != nil {
			return nil, errors.Wrapf(ErrMalformedResults, "line %d: k %q", line, record[column["k"]])
		}
		if res.Time, err = strconv.ParseInt(record[column["time"]], 10, 64); err != nil {
			return nil, errors.Wrapf(ErrMalformedResults, "line %d: time %q", line, record[column["time"]])
		}
		if res.Space, err = strconv.ParseInt(record[column["space"]], 10, 64); err != nil {
			return nil, errors.Wrapf(ErrMalformedResults, "line %d: space %q", line, record[column["space"]])
		}
		if hasValid {
			if res.Valid, err = strconv.ParseBool(record[validColumn]); err != nil {
				return nil, errors.Wrapf(ErrMalformedResults, "line %d: valid %q", line, record[validColumn])
			}
			res.Validated = true
		}
		results = append(results, res)
	}
}

type resultRow struct {
	Implementation string       `db:"implementation"`
	QueryType      string       `db:"query_type"`
	InputFile      string       `db:"input_file"`
	K              int          `db:"k"`
	Time           int64        `db:"time"`
	Space          int64        `db:"space"`
	Valid          sql.NullBool `db:"valid"`
}

// ReadDB reads all results stored in a sqlite3 results database.
func ReadDB(path string) (results []bench.Result, err error) {
	db, err := sqlx.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %v", path)
	}
	defer func() {
		err = errors.CombineErrors(err, db.Close())
	}()
	return selectResults(db)
}

func selectResults(db *sqlx.DB) ([]bench.Result, error) {
	var rows []resultRow
	err := db.Select(&rows, "SELECT implementation, query_type, input_file, k, time, space, valid FROM results ORDER BY rowid")
	if err != nil {
		return nil, errors.Wrap(err, "cannot select results")
	}
	results := make([]bench.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, bench.Result{
			Implementation: row.Implementation,
			QueryType:      workload.Type(row.QueryType),
			InputFile:      row.InputFile,
			K:              row.K,
			Measurement:    bench.Measurement{Time: row.Time, Space: row.Space},
			Validated:      row.Valid.Valid,
			Valid:          row.Valid.Bool,
		})
	}
	return results, nil
}
