package rforecast

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mhollas/go-rforecast/forecast"
	"github.com/mhollas/go-rforecast/timeseries"
)

// LineSeries generates an echart multi-line chart for some arbitrary set of
// aligned series sharing one time axis. The input y is a slice of series
// that must have the same length as the input x slice. NaN values render
// as gaps.
func LineSeries(title string, seriesName []string, x []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				lineData[i] = append(lineData[i], opts.LineData{Value: "-"})
				continue
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	labels := make([]string, 0, len(x))
	for _, xv := range x {
		labels = append(labels, fmt.Sprintf("%.3f", xv))
	}

	line = line.SetXAxis(labels)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineForecast generates an echart line chart for a forecast plotting the
// observed values followed by the point forecast and both prediction bands.
func LineForecast(s *timeseries.Series, bands *Bands, title string) *charts.Line {
	n := s.Len()
	h := len(bands.PointForecast)

	x := make([]float64, 0, n+h)
	for i := 0; i < n; i++ {
		x = append(x, s.TimeAt(i))
	}
	x = append(x, s.HorizonIndex(h)...)

	observed := make([]float64, 0, n+h)
	observed = append(observed, s.Values()...)
	for i := 0; i < h; i++ {
		observed = append(observed, math.NaN())
	}

	pad := func(vals []float64) []float64 {
		out := make([]float64, n, n+h)
		for i := range out {
			out[i] = math.NaN()
		}
		return append(out, vals...)
	}

	return LineSeries(
		title,
		[]string{"Observed", "Forecast", "Upper95", "Upper80", "Lower80", "Lower95"},
		x,
		[][]float64{
			observed,
			pad(bands.PointForecast),
			pad(bands.Upper95),
			pad(bands.Upper80),
			pad(bands.Lower80),
			pad(bands.Lower95),
		},
	)
}

// PlotForecast uses the Apache Echarts library to generate an html page
// showing the forecast with its prediction bands and, when fitted values
// are present, the in-sample fit and residual.
func PlotForecast(w io.Writer, s *timeseries.Series, res *forecast.Result, title string) error {
	if s == nil {
		return forecast.ErrNoSeries
	}
	bands, err := Extract(res, res.Horizon())
	if err != nil {
		return err
	}
	if title == "" {
		title = res.Method
	}

	page := components.NewPage()
	page.AddCharts(LineForecast(s, bands, title))

	if res.Fitted != nil {
		x := make([]float64, 0, s.Len())
		for i := 0; i < s.Len(); i++ {
			x = append(x, s.TimeAt(i))
		}
		page.AddCharts(LineSeries(
			"In-Sample Fit",
			[]string{"Observed", "Fitted"},
			x,
			[][]float64{s.Values(), res.Fitted},
		))
		if res.Residuals != nil {
			page.AddCharts(LineSeries(
				"Fit Residual",
				[]string{"Residual"},
				x,
				[][]float64{res.Residuals},
			))
		}
	}

	return page.Render(io.MultiWriter(w))
}
