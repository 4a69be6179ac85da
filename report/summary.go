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

// Package report summarizes benchmark results as console tables and
// HTML line charts of runtime against query count.
package report

import (
	"io"
	"sort"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the results of one implementation and query type.
type Summary struct {
	Implementation string
	QueryType      workload.Type
	Files          int
	MaxK           int
	MeanTime       float64
	StdTime        float64
	MeanSpace      float64
	TimePerQuery   float64 // total time divided by total queries
	Invalid        int     // validated results with wrong answers
}

type group struct {
	implementation string
	queryType      workload.Type
}

// Summarize groups results by implementation and query type. Groups are
// ordered by first appearance of the implementation, then by query type.
func Summarize(results []bench.Result) []Summary {
	groups := map[group][]bench.Result{}
	order := map[string]int{}
	for _, r := range results {
		if _, ok := order[r.Implementation]; !ok {
			order[r.Implementation] = len(order)
		}
		g := group{r.Implementation, r.QueryType}
		groups[g] = append(groups[g], r)
	}

	keys := maps.Keys(groups)
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.implementation != b.implementation {
			return order[a.implementation] < order[b.implementation]
		}
		return typeRank(a.queryType) < typeRank(b.queryType)
	})

	res := make([]Summary, 0, len(keys))
	for _, g := range keys {
		rs := groups[g]
		times := make([]float64, len(rs))
		spaces := make([]float64, len(rs))
		s := Summary{Implementation: g.implementation, QueryType: g.queryType, Files: len(rs)}
		var totalTime, totalK float64
		for i, r := range rs {
			times[i] = float64(r.Time)
			spaces[i] = float64(r.Space)
			totalTime += float64(r.Time)
			totalK += float64(r.K)
			s.MaxK = max(s.MaxK, r.K)
			if r.Validated && !r.Valid {
				s.Invalid++
			}
		}
		s.MeanTime, s.StdTime = stat.MeanStdDev(times, nil)
		if len(rs) < 2 {
			s.StdTime = 0
		}
		s.MeanSpace = stat.Mean(spaces, nil)
		if totalK > 0 {
			s.TimePerQuery = totalTime / totalK
		}
		res = append(res, s)
	}
	return res
}

// typeRank orders known query types as listed in workload.Types and
// unknown ones last.
func typeRank(t workload.Type) int {
	for i, known := range workload.Types {
		if t == known {
			return i
		}
	}
	return len(workload.Types)
}

// RenderTable writes the summaries as a console table.
func RenderTable(w io.Writer, summaries []Summary) {
	p := message.NewPrinter(language.English)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"implementation", "query type", "files", "max k", "mean time", "std time", "time/query", "mean space", "invalid"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Implementation,
			string(s.QueryType),
			s.Files,
			p.Sprintf("%d", s.MaxK),
			p.Sprintf("%.1f", s.MeanTime),
			p.Sprintf("%.1f", s.StdTime),
			p.Sprintf("%.4f", s.TimePerQuery),
			p.Sprintf("%.0f", s.MeanSpace),
			s.Invalid,
		})
	}
	t.Render()
}
