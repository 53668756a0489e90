package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeMultiplicative(t *testing.T) {
	// constant level 10 with an exact multiplicative figure averaging to 1
	figure := []float64{0.8, 1.1, 0.9, 1.2}
	values := make([]float64, 12)
	for i := range values {
		values[i] = 10 * figure[i%4]
	}

	d, err := Decompose(values, 4, Multiplicative)
	require.Nil(t, err)

	assert.InDeltaSlice(t, figure, d.Figure, 1e-9)
	for i, v := range d.Trend {
		if i < 2 || i >= 10 {
			assert.True(t, math.IsNaN(v), "trend index %d", i)
			continue
		}
		assert.InDelta(t, 10, v, 1e-9, "trend index %d", i)
	}
	for i, v := range d.Seasonal {
		assert.InDelta(t, figure[i%4], v, 1e-9, "seasonal index %d", i)
	}
	for i := 2; i < 10; i++ {
		assert.InDelta(t, 1, d.Remainder[i], 1e-9, "remainder index %d", i)
	}

	adj, err := d.SeasonallyAdjusted(values)
	require.Nil(t, err)
	assert.InDeltaSlice(t, []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}, adj, 1e-9)
}

func TestDecomposeAdditive(t *testing.T) {
	// constant level 5 with an exact additive figure averaging to 0
	figure := []float64{-1, 2, 0, -1}
	values := make([]float64, 12)
	for i := range values {
		values[i] = 5 + figure[i%4]
	}

	d, err := Decompose(values, 4, Additive)
	require.Nil(t, err)

	assert.InDeltaSlice(t, figure, d.Figure, 1e-9)
	for i := 2; i < 10; i++ {
		assert.InDelta(t, 5, d.Trend[i], 1e-9, "trend index %d", i)
		assert.InDelta(t, 0, d.Remainder[i], 1e-9, "remainder index %d", i)
	}

	adj, err := d.SeasonallyAdjusted(values)
	require.Nil(t, err)
	for i, v := range adj {
		assert.InDelta(t, 5, v, 1e-9, "adjusted index %d", i)
	}
}

func TestDecomposeOddPeriod(t *testing.T) {
	figure := []float64{-2, 1, 1}
	values := make([]float64, 9)
	for i := range values {
		values[i] = 20 + figure[i%3]
	}

	d, err := Decompose(values, 3, Additive)
	require.Nil(t, err)

	assert.InDeltaSlice(t, figure, d.Figure, 1e-9)
	for i := 1; i < 8; i++ {
		assert.InDelta(t, 20, d.Trend[i], 1e-9, "trend index %d", i)
	}
	assert.True(t, math.IsNaN(d.Trend[0]))
	assert.True(t, math.IsNaN(d.Trend[8]))
}

func TestDecomposeErrors(t *testing.T) {
	type testData struct {
		values []float64
		period int
		dtype  DecompositionType
		err    error
	}
	testmap := map[string]testData{
		"empty": {
			values: nil,
			period: 4,
			dtype:  Additive,
			err:    ErrNoData,
		},
		"period too small": {
			values: []float64{1, 2, 3, 4},
			period: 1,
			dtype:  Additive,
			err:    ErrInvalidPeriod,
		},
		"too few periods": {
			values: []float64{1, 2, 3, 4, 5, 6, 7},
			period: 4,
			dtype:  Multiplicative,
			err:    ErrTooFewPeriods,
		},
		"unknown type": {
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8},
			period: 4,
			dtype:  DecompositionType("robust"),
			err:    ErrInvalidDecompositionType,
		},
	}
	for name, td := range testmap {
		t.Run(name, func(t *testing.T) {
			_, err := Decompose(td.values, td.period, td.dtype)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestSeasonallyAdjustedLenMismatch(t *testing.T) {
	values := []float64{1, 2, 1, 2, 1, 2, 1, 2}
	d, err := Decompose(values, 2, Additive)
	require.Nil(t, err)

	_, err = d.SeasonallyAdjusted(values[:4])
	assert.ErrorIs(t, err, ErrComponentLenMismatch)
}
