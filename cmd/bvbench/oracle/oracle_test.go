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
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/bvbench/bitvector"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCommand_OracleWritesAnswers(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "workload.txt.gz")
	output := filepath.Join(tmpDir, "answers.txt")
	bits, err := bitvector.Parse("01101001")
	require.NoError(t, err)
	wl := &workload.Workload{
		Bits: bits,
		Queries: []workload.Query{
			workload.NewRank(1, 4),
			workload.NewSelect(0, 3),
			workload.NewAccess(7),
		},
	}
	require.NoError(t, workload.WriteFile(input, wl))

	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	args := utils.NewArgs("test").
		Arg(Command.Name).
		Flag(utils.OutputFlag.Name, output).
		Flag("log", "critical").
		Arg(input).
		Build()

	// when
	err = app.Run(args)

	// then
	require.NoError(t, err)
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "2\n5\n1\n", string(got))
}

func TestCommand_OracleRequiresOneArgument(t *testing.T) {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	err := app.Run(utils.NewArgs("test").Arg(Command.Name).Build())
	assert.Error(t, err)
}

func TestCommand_OracleFailsOnMalformedWorkload(t *testing.T) {
	input := filepath.Join(t.TempDir(), "workload.txt")
	require.NoError(t, os.WriteFile(input, []byte("1\n0101\nselect 1 3"), 0644))

	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	err := app.Run(utils.NewArgs("test").Arg(Command.Name).Flag("log", "critical").Arg(input).Build())
	assert.ErrorIs(t, err, workload.ErrMalformedWorkload)
}
