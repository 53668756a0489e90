package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DecompositionType selects the classical decomposition model.
type DecompositionType string

const (
	// Additive models the series as trend + seasonal + remainder.
	Additive DecompositionType = "additive"
	// Multiplicative models the series as trend * seasonal * remainder.
	Multiplicative DecompositionType = "multiplicative"
)

var (
	ErrInvalidPeriod            = errors.New("period must be at least 2")
	ErrTooFewPeriods            = errors.New("series must cover at least two full periods")
	ErrInvalidDecompositionType = errors.New("unknown decomposition type")
	ErrComponentLenMismatch     = errors.New("values length does not match the decomposition")
)

// Decomposition holds classical decomposition components, each aligned to
// the input values. Trend and Remainder carry NaN at the edges where the
// centered moving average is undefined.
type Decomposition struct {
	Trend     []float64 `json:"trend"`
	Seasonal  []float64 `json:"seasonal"`
	Remainder []float64 `json:"remainder"`
	// Figure holds one seasonal index per step of the period, aligned to
	// the position of the first observation.
	Figure []float64         `json:"figure"`
	Type   DecompositionType `json:"type"`
	Period int               `json:"period"`
}

// Decompose splits values into trend, seasonal, and remainder components
// using classical moving-average decomposition. The trend is a centered
// moving average over one period, the seasonal figure is the normalized
// per-step mean of the detrended values, and the remainder is what is left
// over.
func Decompose(values []float64, period int, dtype DecompositionType) (*Decomposition, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrNoData
	}
	if period < 2 {
		return nil, fmt.Errorf("period of %d, %w", period, ErrInvalidPeriod)
	}
	if n < 2*period {
		return nil, fmt.Errorf("%d observations at period %d, %w", n, period, ErrTooFewPeriods)
	}
	switch dtype {
	case Additive, Multiplicative:
	default:
		return nil, fmt.Errorf("%q, %w", dtype, ErrInvalidDecompositionType)
	}

	trend := centeredMA(values, period)

	detrended := make([]float64, n)
	for i, v := range values {
		if dtype == Additive {
			detrended[i] = v - trend[i]
		} else {
			detrended[i] = v / trend[i]
		}
	}

	figure := make([]float64, period)
	for p := 0; p < period; p++ {
		var sum float64
		var cnt int
		for i := p; i < n; i += period {
			if math.IsNaN(detrended[i]) {
				continue
			}
			sum += detrended[i]
			cnt++
		}
		if cnt == 0 {
			figure[p] = math.NaN()
			continue
		}
		figure[p] = sum / float64(cnt)
	}

	// center the figure so the seasonal component carries no level
	m := stat.Mean(figure, nil)
	for p := range figure {
		if dtype == Additive {
			figure[p] -= m
		} else {
			figure[p] /= m
		}
	}

	seasonal := make([]float64, n)
	for i := range seasonal {
		seasonal[i] = figure[i%period]
	}
	remainder := make([]float64, n)
	for i := range remainder {
		if dtype == Additive {
			remainder[i] = values[i] - trend[i] - seasonal[i]
		} else {
			remainder[i] = values[i] / (trend[i] * seasonal[i])
		}
	}

	return &Decomposition{
		Trend:     trend,
		Seasonal:  seasonal,
		Remainder: remainder,
		Figure:    figure,
		Type:      dtype,
		Period:    period,
	}, nil
}

// SeasonallyAdjusted returns values with the seasonal component removed.
func (d *Decomposition) SeasonallyAdjusted(values []float64) ([]float64, error) {
	if len(values) != len(d.Seasonal) {
		return nil, fmt.Errorf("%d values against %d, %w", len(values), len(d.Seasonal), ErrComponentLenMismatch)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if d.Type == Additive {
			out[i] = v - d.Seasonal[i]
		} else {
			out[i] = v / d.Seasonal[i]
		}
	}
	return out, nil
}

// centeredMA computes the centered moving average over one period. Even
// periods average period+1 points with half weight at both ends. Positions
// without a full window are NaN.
func centeredMA(values []float64, period int) []float64 {
	n := len(values)
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	half := period / 2
	if period%2 == 1 {
		for i := half; i < n-half; i++ {
			var sum float64
			for j := i - half; j <= i+half; j++ {
				sum += values[j]
			}
			trend[i] = sum / float64(period)
		}
		return trend
	}

	for i := half; i < n-half; i++ {
		sum := 0.5*values[i-half] + 0.5*values[i+half]
		for j := i - half + 1; j <= i+half-1; j++ {
			sum += values[j]
		}
		trend[i] = sum / float64(period)
	}
	return trend
}
