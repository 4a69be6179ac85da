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

package main

import (
	"log"
	"os"

	"github.com/0xsoniclabs/bvbench/cmd/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/cmd/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/cmd/bvbench/generate"
	"github.com/0xsoniclabs/bvbench/cmd/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/cmd/bvbench/report"
	"github.com/0xsoniclabs/bvbench/cmd/bvbench/verify"
	"github.com/urfave/cli/v2"
)

// BvbenchApp data structure
var BvbenchApp = cli.App{
	Name:      "Bvbench",
	HelpName:  "bvbench",
	Usage:     "generate bit-vector workloads, compute reference answers and benchmark implementations",
	Copyright: "(c) 2026 Sonic Labs",
	Commands: []*cli.Command{
		&generate.Command,
		&dataset.Command,
		&oracle.Command,
		&verify.Command,
		&bench.Command,
		&report.Command,
	},
}

// main implements bvbench functions
func main() {
	if err := BvbenchApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
