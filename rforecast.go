// Package rforecast provides classical time series forecasting with the
// calling surface of R's forecast package. A series is built from a flat
// value sequence plus start and frequency metadata, one of five procedures
// produces point forecasts with 80% and 95% prediction intervals, and the
// result is extracted back into plain sequences or a labeled table.
package rforecast

import (
	"errors"
	"fmt"

	"github.com/mhollas/go-rforecast/forecast"
	"github.com/mhollas/go-rforecast/timeseries"
	"github.com/mhollas/go-rforecast/transform"
)

var ErrUnknownProcedure = errors.New("procedure is not registered")

// Client dispatches forecasting procedures by name. It is immutable after
// construction and safe for concurrent use. Construct with New.
type Client struct {
	procedures map[string]forecast.Procedure
	names      []string
}

// New returns a Client with the five standard procedures registered:
// meanf, naive, snaive, rwf, and thetaf.
func New() *Client {
	c := &Client{procedures: make(map[string]forecast.Procedure)}
	for _, p := range []forecast.Procedure{
		forecast.Meanf{},
		forecast.Naive{},
		forecast.Snaive{},
		forecast.Rwf{},
		forecast.Thetaf{},
	} {
		c.register(p)
	}
	return c
}

func (c *Client) register(p forecast.Procedure) {
	if _, exists := c.procedures[p.Name()]; !exists {
		c.names = append(c.names, p.Name())
	}
	c.procedures[p.Name()] = p
}

// Procedures returns the registered procedure names in registration order.
func (c *Client) Procedures() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Run forecasts h steps of s with the named procedure.
func (c *Client) Run(name string, s *timeseries.Series, h int, opt forecast.Options) (*forecast.Result, error) {
	p, exists := c.procedures[name]
	if !exists {
		return nil, fmt.Errorf("no procedure named %q, %w", name, ErrUnknownProcedure)
	}
	return p.Forecast(s, h, opt)
}

// Meanf forecasts with the mean of all observations. An optional Box-Cox
// lambda transforms the series before fitting.
func (c *Client) Meanf(s *timeseries.Series, h int, lambda transform.Lambda) (*forecast.Result, error) {
	return c.Run("meanf", s, h, forecast.Options{Lambda: lambda})
}

// Thetaf forecasts with the theta method.
func (c *Client) Thetaf(s *timeseries.Series, h int) (*forecast.Result, error) {
	return c.Run("thetaf", s, h, forecast.Options{})
}

// Naive repeats the last observation. An optional Box-Cox lambda
// transforms the series before fitting.
func (c *Client) Naive(s *timeseries.Series, h int, lambda transform.Lambda) (*forecast.Result, error) {
	return c.Run("naive", s, h, forecast.Options{Lambda: lambda})
}

// Snaive repeats the last observed seasonal cycle. An optional Box-Cox
// lambda transforms the series before fitting.
func (c *Client) Snaive(s *timeseries.Series, h int, lambda transform.Lambda) (*forecast.Result, error) {
	return c.Run("snaive", s, h, forecast.Options{Lambda: lambda})
}

// Rwf forecasts with a random walk, optionally with drift. An optional
// Box-Cox lambda transforms the series before fitting.
func (c *Client) Rwf(s *timeseries.Series, h int, drift bool, lambda transform.Lambda) (*forecast.Result, error) {
	return c.Run("rwf", s, h, forecast.Options{Drift: drift, Lambda: lambda})
}
