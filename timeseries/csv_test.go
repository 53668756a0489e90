package timeseries

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	type testData struct {
		input    string
		opts     *CSVOptions
		expected []float64
		err      error
	}
	testmap := map[string]testData{
		"default column name": {
			input:    "time,y\n1,10.5\n2,11\n3,12.25\n",
			opts:     nil,
			expected: []float64{10.5, 11, 12.25},
		},
		"named column": {
			input: "month,passengers\n1,112\n2,118\n",
			opts: func() *CSVOptions {
				o := DefaultCSVOptions()
				o.ValueColumn = "passengers"
				return o
			}(),
			expected: []float64{112, 118},
		},
		"missing markers become nan": {
			input:    "y\n1\nNA\n3\n",
			opts:     nil,
			expected: []float64{1, math.NaN(), 3},
		},
		"no header": {
			input: "4.5\n5.5\n",
			opts: func() *CSVOptions {
				o := DefaultCSVOptions()
				o.HasHeader = false
				return o
			}(),
			expected: []float64{4.5, 5.5},
		},
		"fallback to last column": {
			input:    "idx,level\n1,7\n2,8\n",
			opts:     nil,
			expected: []float64{7, 8},
		},
		"empty file": {
			input: "",
			opts:  nil,
			err:   ErrNoCSVData,
		},
		"header only": {
			input: "time,y\n",
			opts:  nil,
			err:   ErrNoCSVData,
		},
	}
	for name, td := range testmap {
		t.Run(name, func(t *testing.T) {
			s, err := LoadCSVFromReader(strings.NewReader(td.input), td.opts)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			require.Equal(t, len(td.expected), s.Len())
			for i, exp := range td.expected {
				if math.IsNaN(exp) {
					assert.True(t, math.IsNaN(s.At(i)), "index %d", i)
					continue
				}
				assert.Equal(t, exp, s.At(i), "index %d", i)
			}
		})
	}
}

func TestLoadCSVFromReaderSeriesMetadata(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.Start = Start{Period: 1949, Step: 1}
	opts.Frequency = 12

	s, err := LoadCSVFromReader(strings.NewReader("y\n112\n118\n132\n"), opts)
	require.Nil(t, err)
	assert.Equal(t, 12, s.Frequency())
	assert.InDelta(t, 1949.0, s.TimeAt(0), 1e-12)
	assert.InDelta(t, 1949.0+2.0/12.0, s.TimeAt(2), 1e-12)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	s, err := New([]float64{1.5, math.NaN(), 3}, NewStart(2020), 4)
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, s.WriteCSV(&buf))

	opts := DefaultCSVOptions()
	opts.Start = s.Start()
	opts.Frequency = s.Frequency()
	loaded, err := LoadCSVFromReader(&buf, opts)
	require.Nil(t, err)

	require.Equal(t, s.Len(), loaded.Len())
	assert.Equal(t, 1.5, loaded.At(0))
	assert.True(t, math.IsNaN(loaded.At(1)))
	assert.Equal(t, 3.0, loaded.At(2))
}
