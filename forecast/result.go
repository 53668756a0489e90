package forecast

import (
	"github.com/mhollas/go-rforecast/timeseries"
	"github.com/mhollas/go-rforecast/transform"
)

// SeriesMeta records the shape of the input series a result was fit on,
// which is enough to place forecast steps on the time axis.
type SeriesMeta struct {
	Length    int              `json:"length"`
	Start     timeseries.Start `json:"start"`
	Frequency int              `json:"frequency"`
}

// TimeAt returns the fractional time value of forecast step i, where step 0
// is the first position after the observed series.
func (m SeriesMeta) TimeAt(i int) float64 {
	return m.Start.Time(m.Frequency) + float64(m.Length+i)/float64(m.Frequency)
}

// Result is a completed forecast. Lower and Upper hold both prediction
// bands back to back: the first Horizon entries belong to the 80% band and
// the next Horizon entries to the 95% band, mirroring Levels. When a
// Box-Cox lambda was applied, Mean, Lower, Upper, and Fitted are reported
// on the original scale while Residuals stay on the transformed scale.
type Result struct {
	Method    string     `json:"method"`
	Mean      []float64  `json:"mean"`
	Lower     []float64  `json:"lower"`
	Upper     []float64  `json:"upper"`
	Levels    []float64  `json:"levels"`
	Fitted    []float64  `json:"fitted,omitempty"`
	Residuals []float64  `json:"residuals,omitempty"`
	Scores    *Scores    `json:"scores,omitempty"`
	Series    SeriesMeta `json:"series"`
}

// Horizon returns the number of forecast steps.
func (r *Result) Horizon() int {
	if r == nil {
		return 0
	}
	return len(r.Mean)
}

// newResult assembles a result from point forecasts and per-step standard
// errors. mult carries one quantile multiplier per confidence level, in
// band order.
func newResult(method string, s *timeseries.Series, mean, se, mult, fitted, residuals []float64) *Result {
	h := len(mean)
	lower := make([]float64, 0, 2*h)
	upper := make([]float64, 0, 2*h)
	for _, m := range mult {
		for i := 0; i < h; i++ {
			lower = append(lower, mean[i]-m*se[i])
			upper = append(upper, mean[i]+m*se[i])
		}
	}
	return &Result{
		Method: method,
		Mean:   mean,
		Lower:  lower,
		Upper:  upper,
		Levels: []float64{Level80, Level95},
		Fitted: fitted,
		Series: SeriesMeta{
			Length:    s.Len(),
			Start:     s.Start(),
			Frequency: s.Frequency(),
		},
		Residuals: residuals,
	}
}

// invertLambda maps the forecast back to the original scale after fitting
// on Box-Cox transformed values. Residuals are left on the transformed
// scale.
func (r *Result) invertLambda(lambda transform.Lambda) {
	if !lambda.Valid {
		return
	}
	r.Mean = transform.InvBoxCox(r.Mean, lambda.Value)
	r.Lower = transform.InvBoxCox(r.Lower, lambda.Value)
	r.Upper = transform.InvBoxCox(r.Upper, lambda.Value)
	if r.Fitted != nil {
		r.Fitted = transform.InvBoxCox(r.Fitted, lambda.Value)
	}
}

// attachScores computes in-sample fit scores against the observed values.
func (r *Result) attachScores(observed []float64) {
	scores, err := NewScores(r.Fitted, observed)
	if err != nil {
		return
	}
	r.Scores = scores
}
