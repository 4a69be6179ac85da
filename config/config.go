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

package config

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Config summarizes the user's choices for a command.
type Config struct {
	AppName     string
	CommandName string

	BitVectorLength int      // bit-vector length of a single workload
	Seed            int64    // seed of a single workload
	QueryType       string   // query type of a single workload
	Queries         int      // number of queries of a single workload
	MaxQueries      int      // largest query count of a dataset
	Step            int      // query count step of a dataset
	Sizes           []int    // bit-vector lengths of a dataset
	Seeds           []int64  // seeds of a dataset
	QueryTypes      []string // query types of a dataset
	Mix             string   // kind distribution of mixed workloads

	Output       string // output file
	OutputDir    string // output directory
	ExpectedFile string // expected-answer file of a single workload
	WithExpected bool   // write expected-answer files for a dataset
	Compress     bool   // gzip generated files
	Workers      int    // number of parallel workers

	Program         string // command of the external program
	Implementation  string // label of the benchmarked implementation
	ValidateAnswers bool   // validate program answers with the oracle
	ResultsCsv      string // csv file receiving results
	ResultsDb       string // sqlite3 database receiving results
	Title           string // chart title
	Quiet           bool   // no console output of results

	LogLevel string // level of the logger
}

// NewConfig creates the configuration of the running command from its flags.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that do not depend on the command.
func (cfg *Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("number of workers must be positive (%v)", cfg.Workers)
	}
	if cfg.Queries < 0 {
		return fmt.Errorf("number of queries must not be negative (%v)", cfg.Queries)
	}
	if cfg.Step < 1 {
		return fmt.Errorf("query count step must be positive (%v)", cfg.Step)
	}
	if cfg.MaxQueries < cfg.Step {
		return fmt.Errorf("maximum number of queries (%v) is smaller than the step (%v)", cfg.MaxQueries, cfg.Step)
	}
	return nil
}
