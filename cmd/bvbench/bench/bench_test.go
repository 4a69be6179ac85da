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

package bench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/bvbench/config"
	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// makeDataset writes a small dataset and a program answering it with the
// oracle's answers copied from the expected files.
func makeDataset(t *testing.T) (string, string) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no shell available")
	}
	dir := t.TempDir()
	sweep := &dataset.Sweep{
		Types:        []workload.Type{workload.AccessType, workload.RankType},
		Seeds:        []int64{1},
		Sizes:        []int{50},
		MaxQueries:   4,
		Step:         2,
		OutputDir:    dir,
		WithExpected: true,
		Workers:      1,
	}
	_, err := dataset.Generate(context.Background(), sweep, logger.NewLogger("critical", "bench-test"))
	require.NoError(t, err)

	// the program derives the expected file from the input name
	script := filepath.Join(t.TempDir(), "prog.sh")
	body := `in="$1"; out="$2"
exp="$(dirname "$in")/expected_$(basename "$in" | sed 's/^bitvector_//')"
cp "$exp" "$out"
echo "RESULT time=5 space=99"
`
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))
	return dir, "/bin/sh " + script
}

func TestCommand_BenchRecordsResults(t *testing.T) {
	// given
	dir, program := makeDataset(t)
	csvPath := filepath.Join(t.TempDir(), "results.csv")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	args := utils.NewArgs("test").
		Arg(Command.Name).
		Flag(utils.ProgramFlag.Name, program).
		Flag(utils.ImplementationFlag.Name, "main").
		Flag(utils.QueryTypesFlag.Name, []string{"rank"}).
		Flag(utils.ValidateFlag.Name, true).
		Flag(utils.ResultsCsvFlag.Name, csvPath).
		Flag(utils.QuietFlag.Name, true).
		Flag("log", "critical").
		Arg(dir).
		Build()

	// when
	err := app.Run(args)

	// then
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"query_type,input_file,k,time,space,valid",
		"rank,bitvector_rank_n50_seed1_queries2.txt,2,5,99,true",
		"rank,bitvector_rank_n50_seed1_queries4.txt,4,5,99,true",
	}, lines)
}

func TestCommand_BenchRequiresProgram(t *testing.T) {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	err := app.Run(utils.NewArgs("test").Arg(Command.Name).Flag("log", "critical").Build())
	assert.Error(t, err)
}

func TestCommand_BenchFailsWithoutFiles(t *testing.T) {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&Command}
	err := app.Run(utils.NewArgs("test").
		Arg(Command.Name).
		Flag(utils.ProgramFlag.Name, "prog").
		Flag("log", "critical").
		Arg(t.TempDir()).
		Build())
	assert.Error(t, err)
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"bitvector_access_n8_seed1_queries1.txt",
		"bitvector_mixed_n8_seed1_queries1.txt",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	cfg := &config.Config{OutputDir: dir, QueryTypes: []string{"mixed"}}

	files, err := collectFiles(nil, cfg)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, workload.MixedType, files[0].Type)

	// explicit files are taken regardless of the selected types
	files, err = collectFiles([]string{filepath.Join(dir, names[0])}, cfg)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, workload.AccessType, files[0].Type)

	_, err = collectFiles([]string{filepath.Join(dir, "missing.txt")}, cfg)
	assert.Error(t, err)

	cfg.QueryTypes = []string{"delete"}
	_, err = collectFiles(nil, cfg)
	assert.Error(t, err)
}

func TestCollectFiles_RejectsExpectedAnswerFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, dataset.ExpectedFileName(workload.RankType, 8, 1, 1, false))
	require.NoError(t, os.WriteFile(path, []byte("0\n"), 0644))
	cfg := &config.Config{OutputDir: dir, QueryTypes: []string{"rank"}}

	_, err := collectFiles([]string{path}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected-answer file")

	// directories skip them silently
	files, err := collectFiles([]string{dir}, cfg)
	require.NoError(t, err)
	assert.Empty(t, files)
}
