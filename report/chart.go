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

package report

import (
	"io"
	"sort"

	"github.com/0xsoniclabs/bvbench/bench"
	"github.com/0xsoniclabs/bvbench/utils"
	"github.com/0xsoniclabs/bvbench/workload"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// colors of the query types, in workload.Types order
var colors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"}

// Series is the runtime curve of one implementation and query type.
type Series struct {
	Implementation string
	QueryType      workload.Type
	Points         [][2]float64 // (k, time) ordered by k
}

// Name labels the series in the chart legend.
func (s Series) Name() string {
	return string(s.QueryType) + " (" + s.Implementation + ")"
}

// NewSeries extracts one curve per implementation and query type, in the
// order of Summarize.
func NewSeries(results []bench.Result) []Series {
	var res []Series
	for _, s := range Summarize(results) {
		cur := Series{Implementation: s.Implementation, QueryType: s.QueryType}
		for _, r := range results {
			if r.Implementation == s.Implementation && r.QueryType == s.QueryType {
				cur.Points = append(cur.Points, [2]float64{float64(r.K), float64(r.Time)})
			}
		}
		sort.SliceStable(cur.Points, func(i, j int) bool {
			return cur.Points[i][0] < cur.Points[j][0]
		})
		res = append(res, cur)
	}
	return res
}

// convertPoints converts (k, time) pairs to chart points.
func convertPoints(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// NewChart creates a line chart of time against the number of queries.
// The first implementation is drawn solid, all others dashed; a query
// type keeps its color across implementations.
func NewChart(title string, results []bench.Result) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Number of queries", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time (ms)", Type: "value"}),
	)

	first := ""
	for _, s := range NewSeries(results) {
		if first == "" {
			first = s.Implementation
		}
		lineType := "solid"
		if s.Implementation != first {
			lineType = "dashed"
		}
		color := colors[typeRank(s.QueryType)%len(colors)]
		chart.AddSeries(s.Name(), convertPoints(s.Points),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Type: lineType}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}
	return chart
}

// RenderChart renders the chart of the results as HTML.
func RenderChart(w io.Writer, title string, results []bench.Result) error {
	return NewChart(title, results).Render(w)
}

// WriteChart renders the chart into a file, replacing it atomically.
func WriteChart(path string, title string, results []bench.Result) error {
	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		return RenderChart(w, title, results)
	})
}
