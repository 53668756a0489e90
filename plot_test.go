package rforecast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mhollas/go-rforecast/forecast"
	"github.com/mhollas/go-rforecast/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineForecast(t *testing.T) {
	s := monthlyRamp(t, 24, 12)

	res, err := New().Naive(s, 6, transform.Lambda{})
	require.Nil(t, err)
	b, err := Extract(res, 6)
	require.Nil(t, err)

	line := LineForecast(s, b, "Naive Forecast")
	assert.NotNil(t, line)
}

func TestPlotForecast(t *testing.T) {
	s := monthlyRamp(t, 24, 12)

	res, err := New().Rwf(s, 6, true, transform.Lambda{})
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, PlotForecast(&buf, s, res, ""))

	out := buf.String()
	assert.True(t, strings.Contains(out, "<html"))
	assert.Contains(t, out, "Random walk with drift")
	assert.Contains(t, out, "In-Sample Fit")
}

func TestPlotForecastNilArgs(t *testing.T) {
	s := monthlyRamp(t, 24, 12)

	err := PlotForecast(&bytes.Buffer{}, nil, &forecast.Result{}, "")
	assert.ErrorIs(t, err, forecast.ErrNoSeries)

	err = PlotForecast(&bytes.Buffer{}, s, nil, "")
	assert.ErrorIs(t, err, ErrNoResult)
}
