package rforecast

import (
	"errors"
	"fmt"

	"github.com/mhollas/go-rforecast/forecast"
)

var (
	ErrNoResult      = errors.New("no forecast result provided")
	ErrShapeMismatch = errors.New("forecast arrays do not match the requested horizon")
)

// Extraction column names in table order.
const (
	ColLower95       = "lower95"
	ColLower80       = "lower80"
	ColPointForecast = "point_forecast"
	ColUpper80       = "upper80"
	ColUpper95       = "upper95"
)

// Bands is a forecast split into its point forecast and interval bounds,
// each of horizon length.
type Bands struct {
	Lower95       []float64 `json:"lower95"`
	Lower80       []float64 `json:"lower80"`
	PointForecast []float64 `json:"point_forecast"`
	Upper80       []float64 `json:"upper80"`
	Upper95       []float64 `json:"upper95"`
}

// ExtractMean returns a copy of the point forecast of res, validating that
// it holds exactly h values.
func ExtractMean(res *forecast.Result, h int) ([]float64, error) {
	if res == nil {
		return nil, ErrNoResult
	}
	if h < 1 {
		return nil, fmt.Errorf("horizon must be at least 1, got %d, %w", h, ErrShapeMismatch)
	}
	if len(res.Mean) != h {
		return nil, fmt.Errorf("mean has %d values for horizon %d, %w", len(res.Mean), h, ErrShapeMismatch)
	}
	mean := make([]float64, h)
	copy(mean, res.Mean)
	return mean, nil
}

// Extract splits res into its five band sequences. The flat interval
// slices must hold exactly 2h values apiece: the first h form the 80%
// band and the last h the 95% band.
func Extract(res *forecast.Result, h int) (*Bands, error) {
	mean, err := ExtractMean(res, h)
	if err != nil {
		return nil, err
	}
	if len(res.Lower) != 2*h || len(res.Upper) != 2*h {
		return nil, fmt.Errorf("intervals have %d lower and %d upper values for horizon %d, %w",
			len(res.Lower), len(res.Upper), h, ErrShapeMismatch)
	}

	b := &Bands{
		Lower95:       make([]float64, h),
		Lower80:       make([]float64, h),
		PointForecast: mean,
		Upper80:       make([]float64, h),
		Upper95:       make([]float64, h),
	}
	copy(b.Lower80, res.Lower[:h])
	copy(b.Lower95, res.Lower[h:])
	copy(b.Upper80, res.Upper[:h])
	copy(b.Upper95, res.Upper[h:])
	return b, nil
}

// ExtractTable lays the five band sequences out as a table with the fixed
// column order lower95, lower80, point_forecast, upper80, upper95, indexed
// by the fractional time of each forecast step.
func ExtractTable(res *forecast.Result, h int) (*Table, error) {
	b, err := Extract(res, h)
	if err != nil {
		return nil, err
	}
	return NewTable(forecastIndex(res, h), []Column{
		{Name: ColLower95, Values: b.Lower95},
		{Name: ColLower80, Values: b.Lower80},
		{Name: ColPointForecast, Values: b.PointForecast},
		{Name: ColUpper80, Values: b.Upper80},
		{Name: ColUpper95, Values: b.Upper95},
	})
}

// ExtractMeanTable lays the point forecast out as a single-column table
// indexed by the fractional time of each forecast step.
func ExtractMeanTable(res *forecast.Result, h int) (*Table, error) {
	mean, err := ExtractMean(res, h)
	if err != nil {
		return nil, err
	}
	return NewTable(forecastIndex(res, h), []Column{
		{Name: ColPointForecast, Values: mean},
	})
}

// forecastIndex materializes the time positions of the h steps after the
// observed series, falling back to ordinal steps when no metadata is set.
func forecastIndex(res *forecast.Result, h int) []float64 {
	idx := make([]float64, h)
	for i := range idx {
		if res.Series.Frequency < 1 {
			idx[i] = float64(i + 1)
			continue
		}
		idx[i] = res.Series.TimeAt(i)
	}
	return idx
}
