// Package stats provides the statistical helpers behind the forecast
// procedures: sample autocorrelation, a seasonality significance test, and
// classical seasonal decomposition.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrNoData     = errors.New("no data")
	ErrInvalidLag = errors.New("lag must be non-negative and less than the series length")
)

// ACF returns the sample autocorrelation of values at lags 0 through
// maxLag, normalized by the lag-0 autocovariance. A constant series has
// zero autocorrelation beyond lag 0.
func ACF(values []float64, maxLag int) ([]float64, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrNoData
	}
	if maxLag < 0 || maxLag >= n {
		return nil, fmt.Errorf("lag of %d with %d observations, %w", maxLag, n, ErrInvalidLag)
	}

	mean := stat.Mean(values, nil)
	var c0 float64
	for _, v := range values {
		d := v - mean
		c0 += d * d
	}
	c0 /= float64(n)

	acf := make([]float64, maxLag+1)
	acf[0] = 1
	if c0 == 0 {
		return acf, nil
	}
	for k := 1; k <= maxLag; k++ {
		var ck float64
		for t := k; t < n; t++ {
			ck += (values[t] - mean) * (values[t-k] - mean)
		}
		ck /= float64(n)
		acf[k] = ck / c0
	}
	return acf, nil
}

// SeasonalACFTest reports whether values carry significant autocorrelation
// at the seasonal lag period. The lag-period autocorrelation is compared
// against its large-sample standard error accounting for the shorter lags,
// at the one-sided 95% level.
func SeasonalACFTest(values []float64, period int) (bool, error) {
	if period < 1 {
		return false, fmt.Errorf("period of %d, %w", period, ErrInvalidLag)
	}
	r, err := ACF(values, period)
	if err != nil {
		return false, err
	}

	var sumsq float64
	for _, v := range r[1:period] {
		sumsq += v * v
	}
	se := math.Sqrt((1 + 2*sumsq) / float64(len(values)))
	limit := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.95)
	return math.Abs(r[period]) > limit*se, nil
}
