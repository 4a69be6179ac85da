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
	"fmt"
	"os"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/urfave/cli/v2"
)

// Command benchmarks an external program over dataset files.
var Command = cli.Command{
	Action:    benchAction,
	Name:      "bench",
	Usage:     "run a bit-vector program on workload files and record time and space",
	ArgsUsage: "[<workload_file|dataset_dir>...]",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.ProgramFlag,
		&utils.ImplementationFlag,
		&utils.OutputDirFlag,
		&utils.QueryTypesFlag,
		&utils.ValidateFlag,
		&utils.ResultsCsvFlag,
		&utils.ResultsDbFlag,
		&utils.QuietFlag,
	},
	Description: `
The bench command runs --program once per workload file as
'<program> [args...] <input_file> <output_file>' and parses time=<int> and
space=<int> from its stdout. Arguments are workload files or dataset
directories; without arguments the files in --output-dir of --query-types are
used. Results are printed as csv and optionally appended to --results-csv and
stored in --results-db.`,
}

func benchAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Program == "" {
		return fmt.Errorf("bench command requires --%v", utils.ProgramFlag.Name)
	}
	log := logger.NewLogger(cfg.LogLevel, "Bench")

	files, err := collectFiles(ctx.Args().Slice(), cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no workload files found")
	}

	b, err := bench.NewBenchmark(cfg, utils.NewShell(), log)
	if err != nil {
		return err
	}
	_, err = b.Run(ctx.Context, files)
	if cerr := b.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// collectFiles resolves the command arguments to workload files. Dataset
// directories contribute the files of the selected query types.
func collectFiles(args []string, cfg *config.Config) ([]dataset.FileInfo, error) {
	if len(args) == 0 {
		args = []string{cfg.OutputDir}
	}
	types, err := workload.ParseTypes(cfg.QueryTypes)
	if err != nil {
		return nil, err
	}
	selected := make(map[workload.Type]bool, len(types))
	for _, t := range types {
		selected[t] = true
	}

	var files []dataset.FileInfo
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			fi, err := dataset.ParseFileName(arg)
			if err != nil {
				return nil, err
			}
			if fi.Expected {
				return nil, fmt.Errorf("%v is an expected-answer file, not a workload", arg)
			}
			files = append(files, fi)
			continue
		}
		listed, err := dataset.List(arg)
		if err != nil {
			return nil, err
		}
		for _, fi := range listed {
			if selected[fi.Type] {
				files = append(files, fi)
			}
		}
	}
	return files, nil
}
