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
	"fmt"
	"os"
	"strings"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/report"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/urfave/cli/v2"
)

// Command summarizes benchmark results.
var Command = cli.Command{
	Action:    reportAction,
	Name:      "report",
	Usage:     "summarize benchmark results and plot runtime against query count",
	ArgsUsage: "[[<implementation>=]<results_csv>...]",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.ResultsDbFlag,
		&utils.OutputFlag,
		&utils.TitleFlag,
		&utils.QuietFlag,
	},
	Description: `
The report command reads result csv files, each optionally labelled with an
implementation name, and the results stored in --results-db. It prints a
summary table per implementation and query type and, with --output, writes an
HTML line chart of time against the number of queries.`,
}

func reportAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Report")

	results, err := readResults(ctx.Args().Slice(), cfg.ResultsDb)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no results given")
	}
	log.Infof("Read %d results", len(results))

	if !cfg.Quiet {
		report.RenderTable(os.Stdout, report.Summarize(results))
	}
	if cfg.Output != "" {
		log.Noticef("Write chart to %v", cfg.Output)
		if err = report.WriteChart(cfg.Output, cfg.Title, results); err != nil {
			return err
		}
	}
	return nil
}

// readResults reads csv files given as "path" or "implementation=path" and
// the results database.
func readResults(args []string, db string) ([]bench.Result, error) {
	var results []bench.Result
	for _, arg := range args {
		implementation, path, found := strings.Cut(arg, "=")
		if !found {
			implementation, path = "", arg
		}
		rs, err := report.ReadCSV(path, implementation)
		if err != nil {
			return nil, fmt.Errorf("cannot read %v; %w", path, err)
		}
		results = append(results, rs...)
	}
	if db != "" {
		rs, err := report.ReadDB(db)
		if err != nil {
			return nil, fmt.Errorf("cannot read %v; %w", db, err)
		}
		results = append(results, rs...)
	}
	return results, nil
}
