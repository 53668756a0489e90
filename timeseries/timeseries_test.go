package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	type testData struct {
		values    []float64
		start     Start
		frequency int
		err       error
	}
	testmap := map[string]testData{
		"valid annual": {
			values:    []float64{1, 2, 3},
			start:     NewStart(2000),
			frequency: 1,
		},
		"valid monthly pair": {
			values:    []float64{1, 2, 3},
			start:     Start{Period: 1981, Step: 3},
			frequency: 12,
		},
		"no observations": {
			values:    nil,
			start:     NewStart(1),
			frequency: 1,
			err:       ErrEmptySeries,
		},
		"zero frequency": {
			values:    []float64{1, 2, 3},
			start:     NewStart(1),
			frequency: 0,
			err:       ErrInvalidFrequency,
		},
		"negative frequency": {
			values:    []float64{1, 2, 3},
			start:     NewStart(1),
			frequency: -4,
			err:       ErrInvalidFrequency,
		},
		"nan start period": {
			values:    []float64{1, 2, 3},
			start:     Start{Period: math.NaN(), Step: 1},
			frequency: 1,
			err:       ErrInvalidStart,
		},
		"inf start step": {
			values:    []float64{1, 2, 3},
			start:     Start{Period: 1, Step: math.Inf(1)},
			frequency: 1,
			err:       ErrInvalidStart,
		},
	}
	for name, td := range testmap {
		t.Run(name, func(t *testing.T) {
			s, err := New(td.values, td.start, td.frequency)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			require.NotNil(t, s)
			assert.Equal(t, len(td.values), s.Len())
			assert.Equal(t, td.frequency, s.Frequency())
			assert.Equal(t, td.values, s.Values())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	values := []float64{1, 2, 3}
	s, err := New(values, NewStart(1), 1)
	require.Nil(t, err)

	values[0] = 99
	assert.Equal(t, 1.0, s.At(0))

	got := s.Values()
	got[1] = 99
	assert.Equal(t, 2.0, s.At(1))
}

func TestNewNormalizesZeroStep(t *testing.T) {
	s, err := New([]float64{1, 2}, Start{Period: 2020}, 4)
	require.Nil(t, err)
	assert.Equal(t, Start{Period: 2020, Step: 1}, s.Start())
	assert.Equal(t, 2020.0, s.TimeAt(0))
}

func TestFromValues(t *testing.T) {
	s, err := FromValues([]float64{5, 6, 7})
	require.Nil(t, err)
	assert.Equal(t, 1, s.Frequency())
	assert.Equal(t, NewStart(1), s.Start())
	assert.Equal(t, 1.0, s.TimeAt(0))
	assert.Equal(t, 3.0, s.End())
}

func TestSeriesTimeAt(t *testing.T) {
	type testData struct {
		start     Start
		frequency int
		idx       int
		expected  float64
	}
	testmap := map[string]testData{
		"annual first": {
			start:     NewStart(2000),
			frequency: 1,
			idx:       0,
			expected:  2000,
		},
		"annual later": {
			start:     NewStart(2000),
			frequency: 1,
			idx:       7,
			expected:  2007,
		},
		"monthly mid year": {
			start:     Start{Period: 1981, Step: 7},
			frequency: 12,
			idx:       0,
			expected:  1981.5,
		},
		"monthly rollover": {
			start:     Start{Period: 1981, Step: 11},
			frequency: 12,
			idx:       2,
			expected:  1982,
		},
		"quarterly future position": {
			start:     NewStart(2010),
			frequency: 4,
			idx:       6,
			expected:  2011.5,
		},
	}
	for name, td := range testmap {
		t.Run(name, func(t *testing.T) {
			values := make([]float64, 4)
			s, err := New(values, td.start, td.frequency)
			require.Nil(t, err)
			assert.InDelta(t, td.expected, s.TimeAt(td.idx), 1e-12)
		})
	}
}

func TestHorizonIndex(t *testing.T) {
	s, err := New(make([]float64, 24), NewStart(2020), 12)
	require.Nil(t, err)

	idx := s.HorizonIndex(3)
	assert.InDeltaSlice(t, []float64{2022, 2022 + 1.0/12, 2022 + 2.0/12}, idx, 1e-12)
	assert.Empty(t, s.HorizonIndex(0))
}

func TestWithValues(t *testing.T) {
	s, err := New([]float64{1, 2, 3}, Start{Period: 1990, Step: 2}, 4)
	require.Nil(t, err)

	next, err := s.WithValues([]float64{9, 8, 7, 6})
	require.Nil(t, err)
	assert.Equal(t, s.Start(), next.Start())
	assert.Equal(t, s.Frequency(), next.Frequency())
	assert.Equal(t, []float64{9, 8, 7, 6}, next.Values())

	_, err = s.WithValues(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestCopy(t *testing.T) {
	s, err := New([]float64{1, 2, 3}, NewStart(5), 2)
	require.Nil(t, err)

	c := s.Copy()
	require.NotNil(t, c)
	assert.Equal(t, s.Values(), c.Values())
	assert.Equal(t, s.Start(), c.Start())
	assert.Equal(t, s.Frequency(), c.Frequency())

	var nilSeries *Series
	assert.Nil(t, nilSeries.Copy())
	assert.Equal(t, 0, nilSeries.Len())
}
