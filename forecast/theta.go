package forecast

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mhollas/go-rforecast/stats"
	"github.com/mhollas/go-rforecast/timeseries"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// Thetaf implements the theta method: simple exponential smoothing with a
// drift equal to half the slope of a linear trend regression. Periodic
// series with significant seasonal autocorrelation are multiplicatively
// deseasonalized before fitting and reseasonalized on the way out. The
// series must carry no missing observations.
type Thetaf struct{}

func (Thetaf) Name() string { return "thetaf" }

// Forecast implements Procedure.
func (Thetaf) Forecast(s *timeseries.Series, h int, opt Options) (*Result, error) {
	if s == nil {
		return nil, ErrNoSeries
	}
	if opt.Lambda.Valid {
		return nil, fmt.Errorf("thetaf does not take a box-cox lambda, %w", ErrUnsupportedOption)
	}
	if opt.Drift {
		return nil, fmt.Errorf("thetaf does not take a drift term, %w", ErrUnsupportedOption)
	}
	h = horizonOr(h, DefaultHorizon)

	orig := s.Values()
	n := len(orig)
	if n < 3 {
		return nil, fmt.Errorf("thetaf needs at least 3 observations, have %d, %w", n, ErrTooFewObservations)
	}
	m := s.Frequency()

	work := orig
	var seasonalComp []float64
	if m > 1 && n > 2*m {
		seasonal, err := stats.SeasonalACFTest(orig, m)
		if err != nil {
			return nil, fmt.Errorf("testing seasonality, %w", err)
		}
		if seasonal {
			dec, err := stats.Decompose(orig, m, stats.Multiplicative)
			if err != nil {
				return nil, fmt.Errorf("decomposing series, %w", err)
			}
			if degenerateFigure(dec.Figure) {
				slog.Warn("seasonal indexes near zero, using non-seasonal theta method", "period", m)
			} else {
				work, err = dec.SeasonallyAdjusted(orig)
				if err != nil {
					return nil, fmt.Errorf("deseasonalizing series, %w", err)
				}
				seasonalComp = dec.Seasonal
			}
		}
	}

	fit, err := sesFit(work)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, work, nil, false)
	drift := slope / 2

	alpha := math.Max(1e-10, fit.alpha)
	decay := (1 - math.Pow(1-alpha, float64(n))) / alpha
	mean := make([]float64, h)
	for i := range mean {
		mean[i] = fit.level + drift*(float64(i)+decay)
	}

	fitted := fit.fitted
	if seasonalComp != nil {
		for i := range mean {
			mean[i] *= seasonalComp[n-m+i%m]
		}
		for i := range fitted {
			fitted[i] *= seasonalComp[i]
		}
	}
	residuals := make([]float64, n)
	for i := range residuals {
		residuals[i] = orig[i] - fitted[i]
	}

	se := make([]float64, h)
	sigma := math.Sqrt(fit.sigma2)
	for i := range se {
		se[i] = sigma * math.Sqrt(float64(i)*alpha*alpha+1)
	}

	mult := []float64{zscore(Level80), zscore(Level95)}
	res := newResult("Theta", s, mean, se, mult, fitted, residuals)
	res.attachScores(orig)
	return res, nil
}

func degenerateFigure(figure []float64) bool {
	for _, f := range figure {
		if math.Abs(f) < 1e-4 {
			return true
		}
	}
	return false
}

type sesModel struct {
	alpha  float64
	l0     float64
	level  float64
	sigma2 float64
	fitted []float64
}

// sesFit estimates simple exponential smoothing by minimizing the one-step
// squared error over the smoothing factor and initial level.
func sesFit(values []float64) (sesModel, error) {
	for _, v := range values {
		if math.IsNaN(v) {
			return sesModel{}, fmt.Errorf("exponential smoothing requires complete data, %w", ErrMissingValues)
		}
	}
	if len(values) < 2 {
		return sesModel{}, fmt.Errorf("exponential smoothing needs at least 2 observations, %w", ErrTooFewObservations)
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			alpha, l0 := p[0], p[1]
			if alpha <= 0 || alpha >= 1 {
				return math.Inf(1)
			}
			return sesSSE(values, alpha, l0)
		},
	}

	alpha, l0 := 0.5, values[0]
	sol, err := optimize.Minimize(problem, []float64{alpha, l0}, nil, &optimize.NelderMead{})
	switch {
	case sol != nil && len(sol.X) == 2 && !math.IsNaN(sol.X[0]) && !math.IsNaN(sol.X[1]):
		alpha, l0 = sol.X[0], sol.X[1]
	case err != nil:
		return sesModel{}, fmt.Errorf("estimating smoothing parameters, %w", err)
	}
	alpha = math.Min(math.Max(alpha, 1e-10), 1-1e-10)

	level := l0
	fitted := make([]float64, len(values))
	var sse float64
	for i, v := range values {
		fitted[i] = level
		e := v - level
		sse += e * e
		level = alpha*v + (1-alpha)*level
	}

	return sesModel{
		alpha:  alpha,
		l0:     l0,
		level:  level,
		sigma2: sse / float64(len(values)),
		fitted: fitted,
	}, nil
}

func sesSSE(values []float64, alpha, l0 float64) float64 {
	level := l0
	var sse float64
	for _, v := range values {
		e := v - level
		sse += e * e
		level = alpha*v + (1-alpha)*level
	}
	return sse
}
