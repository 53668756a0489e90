package forecast

import (
	"fmt"
	"math"

	"github.com/mhollas/go-rforecast/timeseries"
	"github.com/mhollas/go-rforecast/transform"
	"gonum.org/v1/gonum/stat"
)

// Naive forecasts the last observation forward, the random walk point
// forecast. An optional Box-Cox lambda transforms the series before
// fitting.
type Naive struct{}

func (Naive) Name() string { return "naive" }

// Forecast implements Procedure.
func (Naive) Forecast(s *timeseries.Series, h int, opt Options) (*Result, error) {
	if s == nil {
		return nil, ErrNoSeries
	}
	if opt.Drift {
		return nil, fmt.Errorf("naive does not take a drift term, %w", ErrUnsupportedOption)
	}
	return lagWalk(s, horizonOr(h, DefaultHorizon), 1, false, opt.Lambda, "Naive method")
}

// Snaive repeats the last observed period forward. It requires a periodic
// series and defaults the horizon to two full periods. An optional
// Box-Cox lambda transforms the series before fitting.
type Snaive struct{}

func (Snaive) Name() string { return "snaive" }

// Forecast implements Procedure.
func (Snaive) Forecast(s *timeseries.Series, h int, opt Options) (*Result, error) {
	if s == nil {
		return nil, ErrNoSeries
	}
	if opt.Drift {
		return nil, fmt.Errorf("snaive does not take a drift term, %w", ErrUnsupportedOption)
	}
	if s.Frequency() <= 1 {
		return nil, fmt.Errorf("snaive with frequency of %d, %w", s.Frequency(), ErrNonPeriodic)
	}
	return lagWalk(s, horizonOr(h, 2*s.Frequency()), s.Frequency(), false, opt.Lambda, "Seasonal naive method")
}

// Rwf is the random walk forecast. With Options.Drift it adds the mean
// historical difference to every step.
type Rwf struct{}

func (Rwf) Name() string { return "rwf" }

// Forecast implements Procedure.
func (Rwf) Forecast(s *timeseries.Series, h int, opt Options) (*Result, error) {
	if s == nil {
		return nil, ErrNoSeries
	}
	method := "Random walk"
	if opt.Drift {
		method = "Random walk with drift"
	}
	return lagWalk(s, horizonOr(h, DefaultHorizon), 1, opt.Drift, opt.Lambda, method)
}

// lagWalk fits the lagged random walk shared by the naive family. The point
// forecast cycles the last lag observations forward; drift adds the mean
// lag difference once per full cycle. Standard errors widen with the
// number of completed cycles.
func lagWalk(s *timeseries.Series, h, lag int, drift bool, lambda transform.Lambda, method string) (*Result, error) {
	x, err := applyLambda(s, lambda)
	if err != nil {
		return nil, err
	}
	vals := x.Values()
	n := len(vals)

	minObs := lag + 1
	if drift {
		minObs = lag + 2
	}
	if n < minObs {
		return nil, fmt.Errorf("%s needs at least %d observations, have %d, %w", method, minObs, n, ErrTooFewObservations)
	}

	diffs := make([]float64, 0, n-lag)
	for i := lag; i < n; i++ {
		d := vals[i] - vals[i-lag]
		if math.IsNaN(d) {
			continue
		}
		diffs = append(diffs, d)
	}
	if len(diffs) == 0 || (drift && len(diffs) < 2) {
		return nil, fmt.Errorf("%s has too few finite lag differences, %w", method, ErrTooFewObservations)
	}
	nd := float64(len(diffs))

	var b, bse, mse float64
	if drift {
		b = stat.Mean(diffs, nil)
		var ss float64
		for _, d := range diffs {
			dd := d - b
			ss += dd * dd
		}
		mse = ss / (nd - 1)
		bse = math.Sqrt(mse / nd)
	} else {
		var ss float64
		for _, d := range diffs {
			ss += d * d
		}
		mse = ss / nd
	}

	future := vals[n-lag:]
	mean := make([]float64, h)
	se := make([]float64, h)
	for i := 0; i < h; i++ {
		steps := float64(i/lag + 1)
		mean[i] = future[i%lag] + steps*b
		se[i] = math.Sqrt(mse*steps + (steps*bse)*(steps*bse))
	}

	fitted := make([]float64, n)
	residuals := make([]float64, n)
	for i := range fitted {
		if i < lag {
			fitted[i] = math.NaN()
			residuals[i] = math.NaN()
			continue
		}
		fitted[i] = vals[i-lag] + b
		residuals[i] = vals[i] - fitted[i]
	}

	mult := []float64{zscore(Level80), zscore(Level95)}
	res := newResult(method, x, mean, se, mult, fitted, residuals)
	res.invertLambda(lambda)
	res.attachScores(s.Values())
	return res, nil
}
