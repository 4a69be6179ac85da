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
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCommand_DatasetWritesSweep(t *testing.T) {
	// given
	outputDir := filepath.Join(t.TempDir(), "dataset")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	args := utils.NewArgs("test").
		Arg(Command.Name).
		Flag(utils.QueryTypesFlag.Name, []string{"access", "select"}).
		Flag(utils.SeedsFlag.Name, []int64{1, 42}).
		Flag(utils.SizesFlag.Name, []int{100}).
		Flag(utils.MaxQueriesFlag.Name, 20).
		Flag(utils.StepFlag.Name, 10).
		Flag(utils.OutputDirFlag.Name, outputDir).
		Flag(utils.WithExpectedFlag.Name, true).
		Flag(utils.WorkersFlag.Name, 2).
		Flag("log", "critical").
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	files, err := dataset.List(outputDir)
	require.NoError(t, err)
	require.Len(t, files, 2*2*2)
	for _, fi := range files {
		assert.Equal(t, 100, fi.N)
		assert.Contains(t, []workload.Type{workload.AccessType, workload.SelectType}, fi.Type)
		assert.FileExists(t, fi.ExpectedPath())
	}
}

func TestCommand_DatasetRejectsInvalidSweep(t *testing.T) {
	tests := map[string]*utils.ArgsBuilder{
		"unknown type": utils.NewArgs("test").Arg(Command.Name).Flag(utils.QueryTypesFlag.Name, []string{"delete"}),
		"step > max":   utils.NewArgs("test").Arg(Command.Name).Flag(utils.StepFlag.Name, 10).Flag(utils.MaxQueriesFlag.Name, 5),
		"no workers":   utils.NewArgs("test").Arg(Command.Name).Flag(utils.WorkersFlag.Name, 0),
		"bad mix":      utils.NewArgs("test").Arg(Command.Name).Flag(utils.MixFlag.Name, "a,b,c"),
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			app := cli.NewApp()
			app.Commands = []*cli.Command{&Command}
			err := app.Run(args.Flag(utils.OutputDirFlag.Name, t.TempDir()).Flag("log", "critical").Build())
			assert.Error(t, err)
		})
	}
}
