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

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate mockgen -source shell.go -destination shell_mock.go -package utils
type ShellExecutor interface {
	// Command runs name with the given arguments and returns its standard output.
	Command(ctx context.Context, name string, arg ...string) ([]byte, error)
}

type shell struct{}

func (s shell) Command(ctx context.Context, name string, arg ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%s %s failed; %w\n%s%s", name, strings.Join(arg, " "), err, stdout.String(), stderr.String())
	}
	return stdout.Bytes(), nil
}

func NewShell() ShellExecutor {
	return shell{}
}
