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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xsoniclabs/bvbench/dataset"
	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/cockroachdb/errors"
)

// Runner executes an external bit-vector program on workload files. The
// program is invoked as `<program> [args...] <input_file> <output_file>`.
type Runner struct {
	shell          utils.ShellExecutor
	program        string
	args           []string
	implementation string
	validate       bool
	log            logger.Logger
}

// NewRunner creates a runner for command, a program followed by optional
// fixed arguments.
func NewRunner(shell utils.ShellExecutor, command string, implementation string, validate bool, log logger.Logger) (*Runner, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errors.New("no program given")
	}
	return &Runner{
		shell:          shell,
		program:        fields[0],
		args:           fields[1:],
		implementation: implementation,
		validate:       validate,
		log:            log,
	}, nil
}

// Run benchmarks the program on a single workload file.
func (r *Runner) Run(ctx context.Context, fi dataset.FileInfo) (res Result, err error) {
	tmp, err := os.MkdirTemp("", "bvbench-*")
	if err != nil {
		return Result{}, err
	}
	defer func() {
		err = errors.CombineErrors(err, os.RemoveAll(tmp))
	}()

	input := fi.Path
	if fi.Compressed {
		input = filepath.Join(tmp, "input.txt")
		if err = decompress(fi.Path, input); err != nil {
			return Result{}, err
		}
	}
	output := filepath.Join(tmp, "output.txt")

	args := append(append([]string{}, r.args...), input, output)
	r.log.Debugf("Running %v %v", r.program, strings.Join(args, " "))
	stdout, err := r.shell.Command(ctx, r.program, args...)
	if err != nil {
		return Result{}, errors.Wrapf(err, "benchmark of %v failed", fi.Path)
	}
	m, err := ParseResult(string(stdout))
	if err != nil {
		return Result{}, errors.Wrapf(err, "cannot parse output of %v", fi.Path)
	}

	res = Result{
		Implementation: r.implementation,
		QueryType:      fi.Type,
		InputFile:      filepath.Base(fi.Path),
		K:              fi.K,
		Measurement:    m,
	}
	if r.validate {
		res.Validated = true
		err = Verify(fi.Path, fi.ExpectedPath(), output)
		switch {
		case err == nil:
			res.Valid = true
		case errors.Is(err, oracle.ErrAnswerMismatch):
			r.log.Warningf("%v: %v", res.InputFile, err)
			err = nil
		default:
			return Result{}, err
		}
	}
	return res, nil
}

// decompress copies the content of a gzipped dataset file to a plain file
// since external programs only read uncompressed input.
func decompress(src, dst string) (err error) {
	in, err := utils.OpenFile(src)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, in.Close())
	}()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, out.Close())
	}()
	_, err = io.Copy(out, in)
	return err
}
