// Package forecast implements the classic forecasting procedures behind the
// library: the mean forecast, the theta method, the naive and seasonal
// naive walks, and the random walk with optional drift. Every procedure
// returns point forecasts with 80% and 95% prediction intervals computed
// from the method's closed-form standard errors.
package forecast

import (
	"errors"
	"math"

	"github.com/mhollas/go-rforecast/timeseries"
	"github.com/mhollas/go-rforecast/transform"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrNoSeries           = errors.New("no series provided")
	ErrTooFewObservations = errors.New("series is too short for the procedure")
	ErrNonPeriodic        = errors.New("series frequency must be greater than 1")
	ErrMissingValues      = errors.New("series contains missing values")
	ErrUnsupportedOption  = errors.New("option is not supported by the procedure")
)

// DefaultHorizon is the forecast length used when a request leaves the
// horizon unset. The seasonal naive procedure instead defaults to two full
// periods.
const DefaultHorizon = 10

const (
	// Level80 and Level95 are the interval confidence percentages carried
	// by every result, in band order.
	Level80 = 80.0
	Level95 = 95.0
)

// Options adjust a procedure run. The zero value runs the procedure with
// its defaults. Setting a field a procedure cannot honor fails with
// ErrUnsupportedOption.
type Options struct {
	// Lambda applies a Box-Cox transform before fitting and inverts it on
	// the way out. Every procedure except thetaf accepts it.
	Lambda transform.Lambda `json:"lambda"`
	// Drift adds a linear drift term to the random walk procedure.
	Drift bool `json:"drift"`
}

// Procedure is a forecasting method. Forecast produces h steps beyond the
// end of s; h values below 1 select the procedure's default horizon.
type Procedure interface {
	Name() string
	Forecast(s *timeseries.Series, h int, opt Options) (*Result, error)
}

func horizonOr(h, def int) int {
	if h < 1 {
		return def
	}
	return h
}

// applyLambda returns the series to fit on, Box-Cox transformed when lambda
// is set.
func applyLambda(s *timeseries.Series, lambda transform.Lambda) (*timeseries.Series, error) {
	if err := lambda.Validate(); err != nil {
		return nil, err
	}
	if !lambda.Valid {
		return s, nil
	}
	return s.WithValues(transform.BoxCox(s.Values(), lambda.Value))
}

// zscore returns the two-sided normal quantile of an interval level given
// in percent.
func zscore(level float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + level/200)
}

// tscore returns the two-sided Student-t quantile of an interval level
// given in percent. Non-positive degrees of freedom yield an unbounded
// interval.
func tscore(level, df float64) float64 {
	if df <= 0 {
		return math.Inf(1)
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(0.5 + level/200)
}
