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
	"io"

	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/cockroachdb/errors"
)

// WriteAnswersFile stores the answers in path, compressing for ".gz".
func WriteAnswersFile(path string, answers []int) error {
	if err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		return WriteAnswers(w, answers)
	}); err != nil {
		return errors.Wrapf(err, "cannot write answers %v", path)
	}
	return nil
}

// ReadAnswersFile reads the answers stored in path.
func ReadAnswersFile(path string) (answers []int, err error) {
	r, err := utils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.CombineErrors(err, r.Close())
	}()
	answers, err = ReadAnswers(r)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read answers %v", path)
	}
	return answers, nil
}
