package timeseries

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Seq is a float sequence used to compose synthetic series for examples and
// tests. Mutating methods return the receiver so components can be chained.
type Seq []float64

func (q Seq) Add(src Seq) Seq {
	floats.Add(q, src)
	return q
}

func (q Seq) Scale(c float64) Seq {
	floats.Scale(c, q)
	return q
}

func (q Seq) SetConst(val float64, start, end int) Seq {
	for i := start; i < end && i < len(q); i++ {
		q[i] = val
	}
	return q
}

// Series converts the sequence into a Series beginning at start with the
// given frequency.
func (q Seq) Series(start Start, frequency int) (*Series, error) {
	return New(q, start, frequency)
}

func GenerateConst(n int, val float64) Seq {
	q := make(Seq, 0, n)
	for i := 0; i < n; i++ {
		q = append(q, val)
	}
	return q
}

func GenerateTrend(n int, intercept, slope float64) Seq {
	q := make(Seq, 0, n)
	for i := 0; i < n; i++ {
		q = append(q, intercept+slope*float64(i))
	}
	return q
}

// GenerateWave returns a sinusoid with the given amplitude and period in
// samples, shifted by offset samples.
func GenerateWave(n int, amp float64, period int, offset float64) Seq {
	q := make(Seq, 0, n)
	for i := 0; i < n; i++ {
		q = append(q, amp*math.Sin(2.0*math.Pi*(float64(i)+offset)/float64(period)))
	}
	return q
}

func GenerateNoise(n int, scale float64) Seq {
	q := make(Seq, 0, n)
	for i := 0; i < n; i++ {
		q = append(q, rand.NormFloat64()*scale)
	}
	return q
}

// GenerateChange returns a level shift of bias plus a per-sample slope
// beginning at index chpt.
func GenerateChange(n, chpt int, bias, slope float64) Seq {
	q := make(Seq, n)
	for i := chpt; i < n; i++ {
		if i < 0 {
			continue
		}
		q[i] = bias + slope*float64(i-chpt)
	}
	return q
}
