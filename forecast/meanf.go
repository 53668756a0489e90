package forecast

import (
	"fmt"
	"math"

	"github.com/mhollas/go-rforecast/timeseries"
)

// Meanf forecasts every future value as the historical mean with Student-t
// prediction intervals. NaN observations are skipped.
type Meanf struct{}

func (Meanf) Name() string { return "meanf" }

// Forecast implements Procedure. With a single finite observation the
// spread is undefined and the intervals are unbounded.
func (Meanf) Forecast(s *timeseries.Series, h int, opt Options) (*Result, error) {
	if s == nil {
		return nil, ErrNoSeries
	}
	if opt.Drift {
		return nil, fmt.Errorf("meanf does not take a drift term, %w", ErrUnsupportedOption)
	}
	h = horizonOr(h, DefaultHorizon)
	x, err := applyLambda(s, opt.Lambda)
	if err != nil {
		return nil, err
	}

	vals := x.Values()
	var sum float64
	var n int
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("mean forecast needs at least one finite observation, %w", ErrTooFewObservations)
	}
	mu := sum / float64(n)

	var ss float64
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		d := v - mu
		ss += d * d
	}
	se := math.Inf(1)
	if n > 1 {
		sd := math.Sqrt(ss / float64(n-1))
		se = sd * math.Sqrt(1+1/float64(n))
	}

	mean := make([]float64, h)
	spread := make([]float64, h)
	for i := range mean {
		mean[i] = mu
		spread[i] = se
	}
	fitted := make([]float64, len(vals))
	residuals := make([]float64, len(vals))
	for i, v := range vals {
		fitted[i] = mu
		residuals[i] = v - mu
	}

	df := float64(n - 1)
	mult := []float64{tscore(Level80, df), tscore(Level95, df)}
	res := newResult("Mean", x, mean, spread, mult, fitted, residuals)
	res.invertLambda(opt.Lambda)
	res.attachScores(s.Values())
	return res, nil
}
