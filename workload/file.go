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

package workload

import (
	"io"

	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/cockroachdb/errors"
)

// WriteFile serializes the workload to path. The file appears under its
// final name only once it is complete; a ".gz" suffix selects gzip.
func WriteFile(path string, wl *Workload) error {
	if err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		return Write(w, wl)
	}); err != nil {
		return errors.Wrapf(err, "cannot write workload %v", path)
	}
	return nil
}

// ReadFile parses the workload stored in path.
func ReadFile(path string) (wl *Workload, err error) {
	r, err := utils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.CombineErrors(err, r.Close())
	}()
	wl, err = Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read workload %v", path)
	}
	return wl, nil
}
