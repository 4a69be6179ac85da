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
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		BitVectorLength: getFlagValue(ctx, utils.BitVectorLengthFlag).(int),
		Compress:        getFlagValue(ctx, utils.CompressFlag).(bool),
		ExpectedFile:    getFlagValue(ctx, utils.ExpectedFileFlag).(string),
		Implementation:  getFlagValue(ctx, utils.ImplementationFlag).(string),
		LogLevel:        getFlagValue(ctx, logger.LogLevelFlag).(string),
		MaxQueries:      getFlagValue(ctx, utils.MaxQueriesFlag).(int),
		Mix:             getFlagValue(ctx, utils.MixFlag).(string),
		Output:          getFlagValue(ctx, utils.OutputFlag).(string),
		OutputDir:       getFlagValue(ctx, utils.OutputDirFlag).(string),
		Program:         getFlagValue(ctx, utils.ProgramFlag).(string),
		Queries:         getFlagValue(ctx, utils.QueriesFlag).(int),
		QueryType:       getFlagValue(ctx, utils.QueryTypeFlag).(string),
		QueryTypes:      getFlagValue(ctx, utils.QueryTypesFlag).([]string),
		Quiet:           getFlagValue(ctx, utils.QuietFlag).(bool),
		ResultsCsv:      getFlagValue(ctx, utils.ResultsCsvFlag).(string),
		ResultsDb:       getFlagValue(ctx, utils.ResultsDbFlag).(string),
		Seed:            getFlagValue(ctx, utils.SeedFlag).(int64),
		Seeds:           getFlagValue(ctx, utils.SeedsFlag).([]int64),
		Sizes:           getFlagValue(ctx, utils.SizesFlag).([]int),
		Step:            getFlagValue(ctx, utils.StepFlag).(int),
		Title:           getFlagValue(ctx, utils.TitleFlag).(string),
		ValidateAnswers: getFlagValue(ctx, utils.ValidateFlag).(bool),
		WithExpected:    getFlagValue(ctx, utils.WithExpectedFlag).(bool),
		Workers:         getFlagValue(ctx, utils.WorkersFlag).(int),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}

		case cli.StringSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.StringSlice(f.Name)
			}

		case cli.IntSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.IntSlice(f.Name)
			}

		case cli.Int64SliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64Slice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	case cli.StringSliceFlag:
		if f.Value == nil {
			return []string{}
		}
		return f.Value.Value()
	case cli.IntSliceFlag:
		if f.Value == nil {
			return []int{}
		}
		return f.Value.Value()
	case cli.Int64SliceFlag:
		if f.Value == nil {
			return []int64{}
		}
		return f.Value.Value()
	}

	return nil
}
