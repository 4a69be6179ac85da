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

package verify

import (
	"fmt"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/urfave/cli/v2"
)

// Command checks the answers a program produced for a workload file.
var Command = cli.Command{
	Action:    verifyAction,
	Name:      "verify",
	Usage:     "compare a program's answers with the correct answers of a workload",
	ArgsUsage: "<workload_file> <answers_file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.ExpectedFileFlag,
	},
	Description: `
The verify command compares the answers file written by a bit-vector program
with the correct answers of the workload. The correct answers are read from
--expected when given and computed by the oracle otherwise.`,
}

func verifyAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return fmt.Errorf("verify command requires exactly 2 arguments")
	}
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Verify")

	input, output := ctx.Args().Get(0), ctx.Args().Get(1)
	if err = bench.Verify(input, cfg.ExpectedFile, output); err != nil {
		return fmt.Errorf("answers of %v are wrong; %w", output, err)
	}
	log.Noticef("All answers of %v are correct", output)
	return nil
}
