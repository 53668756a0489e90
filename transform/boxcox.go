// Package transform provides the Box-Cox power transform applied around
// forecast procedures to stabilize variance. Procedures fit on the
// transformed scale and invert point forecasts and interval bounds on the
// way out.
package transform

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidLambda = errors.New("lambda must be a finite number")

// Lambda is an optional Box-Cox parameter. The zero value means no
// transform; use NewLambda to request one. A Valid Lambda with value zero
// selects the log transform.
type Lambda struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// NewLambda returns a Lambda applying the transform with the given value.
func NewLambda(value float64) Lambda {
	return Lambda{Value: value, Valid: true}
}

// Validate returns an error if the lambda is set to a non-finite value.
func (l Lambda) Validate() error {
	if !l.Valid {
		return nil
	}
	if math.IsNaN(l.Value) || math.IsInf(l.Value, 0) {
		return fmt.Errorf("lambda of %f, %w", l.Value, ErrInvalidLambda)
	}
	return nil
}

// BoxCox returns the transformed copy of values. A lambda of zero maps to
// the natural log; other lambdas use the signed power form so negative
// inputs stay defined.
func BoxCox(values []float64, lambda float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = boxCox(v, lambda)
	}
	return out
}

// InvBoxCox returns a copy of values mapped back to the original scale.
func InvBoxCox(values []float64, lambda float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = invBoxCox(v, lambda)
	}
	return out
}

func boxCox(v, lambda float64) float64 {
	if lambda == 0 {
		return math.Log(v)
	}
	return (sign(v)*math.Pow(math.Abs(v), lambda) - 1) / lambda
}

func invBoxCox(v, lambda float64) float64 {
	if lambda == 0 {
		return math.Exp(v)
	}
	u := lambda*v + 1
	return sign(u) * math.Pow(math.Abs(u), 1/lambda)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
