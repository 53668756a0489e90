// Package timeseries provides the regular univariate series consumed by the
// forecast procedures. A Series couples observed values with an R-style
// fractional time index described by a start position and an integer
// frequency, e.g. monthly data starting March 1981 has frequency 12 and
// start (1981, 3).
package timeseries

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptySeries      = errors.New("series has no observations")
	ErrInvalidFrequency = errors.New("frequency must be a positive integer")
	ErrInvalidStart     = errors.New("start components must be finite numbers")
)

// Start locates the first observation of a series. Period is the coarse
// cycle, such as a year, and Step the 1-based position within it. A Step of
// zero is treated as 1 so a bare period can be used on its own. Steps
// outside [1, frequency] roll over into neighboring periods.
type Start struct {
	Period float64 `json:"period"`
	Step   float64 `json:"step"`
}

// NewStart returns a Start at the first step of period.
func NewStart(period float64) Start {
	return Start{Period: period, Step: 1}
}

// Time returns the fractional time value of the start at the given
// frequency, e.g. Start{1981, 7} at frequency 12 is 1981.5.
func (st Start) Time(frequency int) float64 {
	step := st.Step
	if step == 0 {
		step = 1
	}
	return st.Period + (step-1)/float64(frequency)
}

func (st Start) validate() error {
	if math.IsNaN(st.Period) || math.IsInf(st.Period, 0) ||
		math.IsNaN(st.Step) || math.IsInf(st.Step, 0) {
		return fmt.Errorf("start (%v, %v), %w", st.Period, st.Step, ErrInvalidStart)
	}
	return nil
}

// Series is an immutable regular univariate time series. NaN values mark
// missing observations.
type Series struct {
	values    []float64
	start     Start
	frequency int
}

// New returns a Series holding a copy of values beginning at start with the
// given number of observations per period.
func New(values []float64, start Start, frequency int) (*Series, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	if frequency < 1 {
		return nil, fmt.Errorf("frequency of %d, %w", frequency, ErrInvalidFrequency)
	}
	if err := start.validate(); err != nil {
		return nil, err
	}
	if start.Step == 0 {
		start.Step = 1
	}

	vals := make([]float64, len(values))
	copy(vals, values)
	return &Series{
		values:    vals,
		start:     start,
		frequency: frequency,
	}, nil
}

// FromValues returns a Series with the default start of 1 and frequency
// of 1.
func FromValues(values []float64) (*Series, error) {
	return New(values, NewStart(1), 1)
}

// Len returns the number of observations.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Frequency returns the number of observations per period.
func (s *Series) Frequency() int {
	return s.frequency
}

// Start returns the position of the first observation.
func (s *Series) Start() Start {
	return s.start
}

// At returns the observation at index i.
func (s *Series) At(i int) float64 {
	return s.values[i]
}

// Values returns a copy of the observations.
func (s *Series) Values() []float64 {
	vals := make([]float64, len(s.values))
	copy(vals, s.values)
	return vals
}

// TimeAt returns the fractional time value of the observation at index i.
// Indexes at or beyond Len address future sample positions, which is how
// forecast outputs are placed on the time axis.
func (s *Series) TimeAt(i int) float64 {
	return s.start.Time(s.frequency) + float64(i)/float64(s.frequency)
}

// End returns the fractional time value of the last observation.
func (s *Series) End() float64 {
	return s.TimeAt(len(s.values) - 1)
}

// HorizonIndex returns the fractional time values of the h sample
// positions following the last observation.
func (s *Series) HorizonIndex(h int) []float64 {
	idx := make([]float64, h)
	for i := range idx {
		idx[i] = s.TimeAt(len(s.values) + i)
	}
	return idx
}

// WithValues returns a new Series carrying values with the receiver's start
// and frequency.
func (s *Series) WithValues(values []float64) (*Series, error) {
	return New(values, s.start, s.frequency)
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	if s == nil {
		return nil
	}
	vals := make([]float64, len(s.values))
	copy(vals, s.values)
	return &Series{
		values:    vals,
		start:     s.start,
		frequency: s.frequency,
	}
}
