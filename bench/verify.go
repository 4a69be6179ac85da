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
	"os"

	"github.com/0xsoniclabs/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/cockroachdb/errors"
)

// ExpectedAnswers returns the answers of the workload file. They are read
// from expectedPath when that file exists and computed by the oracle
// otherwise.
func ExpectedAnswers(workloadPath, expectedPath string) ([]int, error) {
	if expectedPath != "" {
		if _, err := os.Stat(expectedPath); err == nil {
			return oracle.ReadAnswersFile(expectedPath)
		}
	}
	wl, err := workload.ReadFile(workloadPath)
	if err != nil {
		return nil, err
	}
	return oracle.Answers(wl.Bits.String(), wl.Queries)
}

// Verify compares the answers a program wrote to outputPath with the
// expected answers of the workload. A deviation is reported as
// oracle.ErrAnswerMismatch.
func Verify(workloadPath, expectedPath, outputPath string) error {
	expected, err := ExpectedAnswers(workloadPath, expectedPath)
	if err != nil {
		return err
	}
	actual, err := oracle.ReadAnswersFile(outputPath)
	if err != nil {
		return errors.Wrapf(err, "cannot read program answers %v", outputPath)
	}
	return oracle.Compare(expected, actual)
}
