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

// Package dataset generates sweeps of workload files over query types,
// seeds, bit-vector lengths and query counts.
package dataset

import (
	"context"
	"path/filepath"
	"time"

	"github.com/0xsoniclabs/bvbench/logger"
	"github.com/0xsoniclabs/bvbench/oracle"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidSweep is returned for sweep parameters that describe no
// files.
var ErrInvalidSweep = errors.New("invalid sweep")

// Sweep describes a dataset: every query type, seed and length
// combination gets one workload file per query count.
type Sweep struct {
	Types        []workload.Type
	Seeds        []int64
	Sizes        []int
	MaxQueries   int
	Step         int
	Mix          workload.Mix
	OutputDir    string
	Compress     bool
	WithExpected bool
	Workers      int
}

// Combination is the unit of work of a sweep. It owns its bit-vector and
// random sources.
type Combination struct {
	Type workload.Type
	N    int
	Seed int64
}

// Validate checks the sweep parameters.
func (s *Sweep) Validate() error {
	switch {
	case len(s.Types) == 0:
		return errors.Wrap(ErrInvalidSweep, "no query types")
	case len(s.Seeds) == 0:
		return errors.Wrap(ErrInvalidSweep, "no seeds")
	case len(s.Sizes) == 0:
		return errors.Wrap(ErrInvalidSweep, "no sizes")
	case s.Step < 1:
		return errors.Wrapf(ErrInvalidSweep, "step %d is not positive", s.Step)
	case s.MaxQueries < s.Step:
		return errors.Wrapf(ErrInvalidSweep, "max queries %d is smaller than step %d", s.MaxQueries, s.Step)
	case s.Workers < 1:
		return errors.Wrapf(ErrInvalidSweep, "%d workers", s.Workers)
	case s.OutputDir == "":
		return errors.Wrap(ErrInvalidSweep, "no output directory")
	}
	for _, t := range s.Types {
		if !t.Valid() {
			return errors.Wrapf(workload.ErrInvalidQueryType, "%q", string(t))
		}
	}
	return s.mix().Check()
}

// mix returns the kind distribution of mixed workloads; unset means
// uniform.
func (s *Sweep) mix() workload.Mix {
	if s.Mix == (workload.Mix{}) {
		return workload.UniformMix
	}
	return s.Mix
}

// QueryCounts returns step, 2*step, ... up to and including max queries.
func (s *Sweep) QueryCounts() []int {
	if s.Step < 1 {
		return nil
	}
	var res []int
	for k := s.Step; k <= s.MaxQueries; k += s.Step {
		res = append(res, k)
	}
	return res
}

// Combinations lists the (type, length, seed) combinations in type,
// seed, length order.
func (s *Sweep) Combinations() []Combination {
	res := make([]Combination, 0, len(s.Types)*len(s.Seeds)*len(s.Sizes))
	for _, t := range s.Types {
		for _, seed := range s.Seeds {
			for _, n := range s.Sizes {
				res = append(res, Combination{Type: t, N: n, Seed: seed})
			}
		}
	}
	return res
}

// Generate writes all files of the sweep and returns the paths of the
// written workload files in combination order. Combinations run on up to
// Workers goroutines; the first failure stops combinations not yet
// started.
func Generate(ctx context.Context, s *Sweep, log logger.Logger) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	combinations := s.Combinations()
	written := make([][]string, len(combinations))
	start := time.Now()
	log.Noticef("Generating %d combinations with %d query counts each into %v", len(combinations), len(s.QueryCounts()), s.OutputDir)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i, c := range combinations {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			paths, err := s.generate(ctx, c, log)
			if err != nil {
				return errors.Wrapf(err, "%v n=%d seed=%d", c.Type, c.N, c.Seed)
			}
			written[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var res []string
	for _, paths := range written {
		res = append(res, paths...)
	}
	h, m, sec := logger.ParseTime(time.Since(start))
	log.Noticef("Generated %d workload files in %vh %vm %vs", len(res), h, m, sec)
	return res, nil
}

// generate writes the files of one combination. The largest workload is
// sampled once; every smaller query count is a prefix of it.
func (s *Sweep) generate(ctx context.Context, c Combination, log logger.Logger) ([]string, error) {
	g, err := workload.NewGenerator(c.N, c.Seed)
	if err != nil {
		return nil, err
	}
	if err = g.SetMix(s.mix()); err != nil {
		return nil, err
	}
	full, err := g.Workload(c.Type, s.MaxQueries)
	if err != nil {
		return nil, err
	}

	var answers []int
	if s.WithExpected {
		answers, err = oracle.Answers(full.Bits.String(), full.Queries)
		if err != nil {
			return nil, err
		}
	}

	var paths []string
	for _, k := range s.QueryCounts() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(s.OutputDir, FileName(c.Type, c.N, c.Seed, k, s.Compress))
		wl := &workload.Workload{Bits: full.Bits, Queries: full.Queries[:k]}
		if err = workload.WriteFile(path, wl); err != nil {
			return nil, err
		}
		if s.WithExpected {
			expected := filepath.Join(s.OutputDir, ExpectedFileName(c.Type, c.N, c.Seed, k, s.Compress))
			if err = oracle.WriteAnswersFile(expected, answers[:k]); err != nil {
				return nil, err
			}
		}
		log.Debugf("Wrote %v", path)
		paths = append(paths, path)
	}
	log.Infof("Finished %v n=%d seed=%d", c.Type, c.N, c.Seed)
	return paths, nil
}
