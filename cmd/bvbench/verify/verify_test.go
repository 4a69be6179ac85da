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
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func writeFiles(t *testing.T, answers string) (string, string) {
	dir := t.TempDir()
	input := filepath.Join(dir, "workload.txt")
	output := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(input, []byte("3\n01101001\nrank 1 4\nselect 0 3\naccess 7"), 0644))
	require.NoError(t, os.WriteFile(output, []byte(answers), 0644))
	return input, output
}

func run(args []string) error {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	return app.Run(args)
}

func TestCommand_VerifyAcceptsCorrectAnswers(t *testing.T) {
	// programs usually omit the final newline
	input, output := writeFiles(t, "2\n5\n1")
	err := run(utils.NewArgs("test").Arg(Command.Name).Flag("log", "critical").Arg(input).Arg(output).Build())
	assert.NoError(t, err)
}

func TestCommand_VerifyRejectsWrongAnswers(t *testing.T) {
	input, output := writeFiles(t, "2\n4\n1\n")
	err := run(utils.NewArgs("test").Arg(Command.Name).Flag("log", "critical").Arg(input).Arg(output).Build())
	assert.ErrorIs(t, err, oracle.ErrAnswerMismatch)
}

func TestCommand_VerifyUsesExpectedFile(t *testing.T) {
	input, output := writeFiles(t, "7\n7\n7\n")
	expected := filepath.Join(t.TempDir(), "expected.txt")
	require.NoError(t, oracle.WriteAnswersFile(expected, []int{7, 7, 7}))
	err := run(utils.NewArgs("test").Arg(Command.Name).Flag(utils.ExpectedFileFlag.Name, expected).Flag("log", "critical").Arg(input).Arg(output).Build())
	assert.NoError(t, err)
}

func TestCommand_VerifyRequiresTwoArguments(t *testing.T) {
	err := run(utils.NewArgs("test").Arg(Command.Name).Arg("workload.txt").Build())
	assert.Error(t, err)
}
