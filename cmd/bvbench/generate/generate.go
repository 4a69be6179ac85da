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

package generate

import (
	"path/filepath"

	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/urfave/cli/v2"
)

// Command writes a single workload file.
var Command = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "generate a single workload file",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.BitVectorLengthFlag,
		&utils.SeedFlag,
		&utils.QueryTypeFlag,
		&utils.QueriesFlag,
		&utils.MixFlag,
		&utils.OutputFlag,
		&utils.ExpectedFileFlag,
		&utils.CompressFlag,
	},
	Description: `
The generate command synthesizes the bit-vector identified by --n and --seed,
samples --queries queries of --query-type and writes them in the workload
format. Without --output the file is named after its parameters and written
to the working directory. --expected additionally writes the correct answers.`,
}

func generateAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Generate")

	typ, err := workload.ParseType(cfg.QueryType)
	if err != nil {
		return err
	}
	mix, err := workload.ParseMix(cfg.Mix)
	if err != nil {
		return err
	}

	g, err := workload.NewGenerator(cfg.BitVectorLength, cfg.Seed)
	if err != nil {
		return err
	}
	if err = g.SetMix(mix); err != nil {
		return err
	}
	wl, err := g.Workload(typ, cfg.Queries)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = filepath.Join(".", dataset.FileName(typ, cfg.BitVectorLength, cfg.Seed, cfg.Queries, cfg.Compress))
	}
	log.Noticef("Write %v queries of type %v over %v bits to %v", wl.Len(), typ, wl.Bits.Len(), output)
	if err = workload.WriteFile(output, wl); err != nil {
		return err
	}

	if cfg.ExpectedFile != "" {
		answers, err := oracle.Answers(wl.Bits.String(), wl.Queries)
		if err != nil {
			return err
		}
		log.Noticef("Write expected answers to %v", cfg.ExpectedFile)
		if err = oracle.WriteAnswersFile(cfg.ExpectedFile, answers); err != nil {
			return err
		}
	}
	return nil
}
