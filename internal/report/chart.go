// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const centroidSeries = "centroids"

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "640px",
			Width:     "960px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "5%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Right: "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart plots each polygon's vertices as a scatter series with its closed
// outline overlapped as a line, plus one series holding every centroid.
func (r *Report) Chart(title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	centroids := make([]opts.ScatterData, 0, len(r.Entries))
	for _, e := range r.Entries {
		points := make([]opts.ScatterData, 0, len(e.Vertices))
		for i, v := range e.Vertices {
			points = append(points, opts.ScatterData{
				Name:  fmt.Sprintf("%s[%d]", e.Name, i),
				Value: []float64{v.X, v.Y},
			})
		}
		scatter.AddSeries(e.Name, points)

		centroids = append(centroids, opts.ScatterData{
			Name:  fmt.Sprintf("%s area=%.4f", e.Name, e.Area),
			Value: []float64{e.Centroid.X, e.Centroid.Y},
		})

		scatter.Overlap(outline(e))
	}

	scatter.AddSeries(centroidSeries, centroids).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "black",
			}),
		)

	return scatter
}

// outline draws the closed boundary of e, repeating vertex 0 at the end.
func outline(e Entry) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	data := make([]opts.LineData, 0, len(e.Vertices)+1)
	for _, v := range e.Vertices {
		data = append(data, opts.LineData{Value: []float64{v.X, v.Y}})
	}
	if len(e.Vertices) > 0 {
		first := e.Vertices[0]
		data = append(data, opts.LineData{Value: []float64{first.X, first.Y}})
	}

	line.AddSeries(e.Name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
		}),
	)

	return line
}

// RenderHTML writes the chart as a standalone HTML page.
func (r *Report) RenderHTML(w io.Writer, title string) error {
	if err := r.Chart(title).Render(w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}

	return nil
}
