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

// Package bench drives external bit-vector programs over dataset files
// and collects their time and space measurements.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/cockroachdb/errors"
)

const (
	createResultsTable = `CREATE TABLE IF NOT EXISTS results (
	implementation TEXT,
	query_type TEXT,
	input_file TEXT,
	k INTEGER,
	time INTEGER,
	space INTEGER,
	valid BOOLEAN
)`
	insertResult = `INSERT INTO results (implementation, query_type, input_file, k, time, space, valid) VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// Benchmark runs one implementation over workload files, one at a time,
// and hands every result to its printers.
type Benchmark struct {
	runner   *Runner
	printers *utils.Printers
	validate bool
	quiet    bool
	current  Result
	log      logger.Logger
}

// NewBenchmark creates a benchmark of cfg.Program printing to the console
// and, when configured, to a csv file and a sqlite3 database.
func NewBenchmark(cfg *config.Config, shell utils.ShellExecutor, log logger.Logger) (*Benchmark, error) {
	runner, err := NewRunner(shell, cfg.Program, cfg.Implementation, cfg.ValidateAnswers, log)
	if err != nil {
		return nil, err
	}
	b := &Benchmark{
		runner:   runner,
		validate: cfg.ValidateAnswers,
		quiet:    cfg.Quiet,
		log:      log,
	}

	csvRow := func() string {
		return b.current.CSV(b.validate)
	}
	b.printers = utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, csvRow).
		AddPrinterToFile(cfg.ResultsCsv, Header(cfg.ValidateAnswers), csvRow)
	b.printers, err = b.printers.AddPrinterToSqlite3(cfg.ResultsDb, createResultsTable, insertResult, func() [][]any {
		return [][]any{b.current.row()}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open results database %v", cfg.ResultsDb)
	}
	return b, nil
}

// Run benchmarks the given files in order. It stops at the first failing
// run or when ctx is cancelled.
func (b *Benchmark) Run(ctx context.Context, files []dataset.FileInfo) ([]Result, error) {
	if !b.quiet {
		fmt.Println(Header(b.validate))
	}
	start := time.Now()
	results := make([]Result, 0, len(files))
	invalid := 0
	for i, fi := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := b.runner.Run(ctx, fi)
		if err != nil {
			return results, err
		}
		if res.Validated && !res.Valid {
			invalid++
		}
		b.current = res
		if err = b.printers.Print(); err != nil {
			return results, errors.Wrapf(err, "cannot print result of %v", res.InputFile)
		}
		results = append(results, res)
		b.log.Infof("Benchmarked %d/%d: %v", i+1, len(files), res.InputFile)
	}

	h, m, s := logger.ParseTime(time.Since(start))
	b.log.Noticef("Benchmarked %d files in %vh %vm %vs", len(results), h, m, s)
	if invalid > 0 {
		return results, errors.Wrapf(ErrInvalidAnswers, "%d of %d files", invalid, len(results))
	}
	return results, nil
}

// Close releases the printers.
func (b *Benchmark) Close() error {
	return b.printers.Close()
}
