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
	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/urfave/cli/v2"
)

// Command generates a sweep of workload files.
var Command = cli.Command{
	Action: datasetAction,
	Name:   "dataset",
	Usage:  "generate workload files for all combinations of query types, seeds, sizes and query counts",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.QueryTypesFlag,
		&utils.SeedsFlag,
		&utils.SizesFlag,
		&utils.MaxQueriesFlag,
		&utils.StepFlag,
		&utils.MixFlag,
		&utils.OutputDirFlag,
		&utils.CompressFlag,
		&utils.WithExpectedFlag,
		&utils.WorkersFlag,
	},
	Description: `
The dataset command writes one workload file per query type, seed, size and
query count k, where k runs from --step to --max-queries in steps of --step.
Files are named bitvector_<query_type>_n<n>_seed<seed>_queries<k>.txt.`,
}

func datasetAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Dataset")

	types, err := workload.ParseTypes(cfg.QueryTypes)
	if err != nil {
		return err
	}
	mix, err := workload.ParseMix(cfg.Mix)
	if err != nil {
		return err
	}

	sweep := &dataset.Sweep{
		Types:        types,
		Seeds:        cfg.Seeds,
		Sizes:        cfg.Sizes,
		MaxQueries:   cfg.MaxQueries,
		Step:         cfg.Step,
		Mix:          mix,
		OutputDir:    cfg.OutputDir,
		Compress:     cfg.Compress,
		WithExpected: cfg.WithExpected,
		Workers:      cfg.Workers,
	}
	_, err = dataset.Generate(ctx.Context, sweep, log)
	return err
}
