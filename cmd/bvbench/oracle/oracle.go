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

package oracle

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/urfave/cli/v2"
)

// Command computes the expected answers of a workload file.
var Command = cli.Command{
	Action:    oracleAction,
	Name:      "oracle",
	Usage:     "compute the correct answers of a workload file by brute force",
	ArgsUsage: "<workload_file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
	},
	Description: `
The oracle command answers every query of the workload file by scanning the
bit string and writes one answer per line to --output, or to stdout when no
output is given.`,
}

func oracleAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("oracle command requires exactly 1 argument")
	}
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Oracle")

	path := ctx.Args().First()
	wl, err := workload.ReadFile(path)
	if err != nil {
		return err
	}
	log.Infof("Answering %v queries over %v bits", wl.Len(), wl.Bits.Len())
	answers, err := oracle.Answers(wl.Bits.String(), wl.Queries)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return oracle.WriteAnswers(os.Stdout, answers)
	}
	log.Noticef("Write answers to %v", cfg.Output)
	return oracle.WriteAnswersFile(cfg.Output, answers)
}
