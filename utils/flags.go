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

package utils

import "github.com/urfave/cli/v2"

// command line flags
var (
	BitVectorLengthFlag = cli.IntFlag{
		Name:    "n",
		Aliases: []string{"length"},
		Usage:   "number of bits of the bit-vector",
		Value:   1_000_000,
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed identifying the bit-vector and its query stream",
		Value: 42,
	}
	QueryTypeFlag = cli.StringFlag{
		Name:  "query-type",
		Usage: "type of queries (\"access\", \"rank\", \"select\", \"mixed\")",
		Value: "mixed",
	}
	QueriesFlag = cli.IntFlag{
		Name:    "queries",
		Aliases: []string{"k"},
		Usage:   "number of queries of the workload",
		Value:   10_000,
	}
	MaxQueriesFlag = cli.IntFlag{
		Name:  "max-queries",
		Usage: "largest number of queries of a workload in the dataset",
		Value: 200_000,
	}
	StepFlag = cli.IntFlag{
		Name:  "step",
		Usage: "difference between the query counts of consecutive workloads in the dataset",
		Value: 10_000,
	}
	SizesFlag = cli.IntSliceFlag{
		Name:  "sizes",
		Usage: "bit-vector lengths of the dataset",
		Value: cli.NewIntSlice(1_000_000),
	}
	SeedsFlag = cli.Int64SliceFlag{
		Name:  "seeds",
		Usage: "seeds of the dataset",
		Value: cli.NewInt64Slice(42),
	}
	QueryTypesFlag = cli.StringSliceFlag{
		Name:  "query-types",
		Usage: "query types of the dataset",
		Value: cli.NewStringSlice("access", "rank", "select", "mixed"),
	}
	MixFlag = cli.StringFlag{
		Name:  "mix",
		Usage: "probabilities of access, rank and select in mixed workloads, e.g. \"0.5,0.25,0.25\" (default: uniform)",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file",
	}
	OutputDirFlag = cli.PathFlag{
		Name:  "output-dir",
		Usage: "directory receiving the generated files",
		Value: "./dataset",
	}
	ExpectedFileFlag = cli.PathFlag{
		Name:  "expected",
		Usage: "write the oracle's answers to this file",
	}
	WithExpectedFlag = cli.BoolFlag{
		Name:  "with-expected",
		Usage: "write an expected-answer file next to every workload (brute force, small sizes only)",
	}
	CompressFlag = cli.BoolFlag{
		Name:  "compress",
		Usage: "gzip the generated files",
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of parallel workers",
		Value: 1,
	}
	ProgramFlag = cli.StringFlag{
		Name:  "program",
		Usage: "command of the bit-vector program; input and output paths are appended",
	}
	ImplementationFlag = cli.StringFlag{
		Name:  "implementation",
		Usage: "label of the benchmarked implementation",
		Value: "main",
	}
	ValidateFlag = cli.BoolFlag{
		Name:  "validate",
		Usage: "compare the answers of the program with the oracle",
	}
	ResultsCsvFlag = cli.PathFlag{
		Name:  "results-csv",
		Usage: "append benchmark results to this csv file",
	}
	ResultsDbFlag = cli.PathFlag{
		Name:  "results-db",
		Usage: "store benchmark results in this sqlite3 database",
	}
	TitleFlag = cli.StringFlag{
		Name:  "title",
		Usage: "title of the rendered chart",
		Value: "Runtime by query type",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "do not print results to the console",
	}
)
