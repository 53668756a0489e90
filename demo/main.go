// Package main demonstrates the forecasting surface end to end: load or
// simulate a monthly series, run every registered procedure, print the
// forecast tables, and render the theta forecast as an echarts page.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	rforecast "github.com/mhollas/go-rforecast"
	"github.com/mhollas/go-rforecast/forecast"
	"github.com/mhollas/go-rforecast/timeseries"
	"github.com/pkg/profile"
)

func main() {
	var (
		csvPath    = flag.String("csv", "", "path to a CSV file with a y value column")
		out        = flag.String("out", "forecast.html", "output HTML file")
		horizon    = flag.Int("horizon", 24, "number of steps to forecast")
		frequency  = flag.Int("frequency", 12, "observations per seasonal period")
		cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	s, err := loadSeries(*csvPath, *frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load series: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("go-rforecast demo: %d observations, frequency %d, horizon %d\n",
		s.Len(), s.Frequency(), *horizon)
	fmt.Println(strings.Repeat("=", 72))

	c := rforecast.New()
	var plotRes *forecast.Result
	for _, name := range c.Procedures() {
		res, err := c.Run(name, s, *horizon, forecast.Options{})
		if err != nil {
			fmt.Printf("\n%s: %v\n", name, err)
			continue
		}

		fmt.Printf("\n%s (%s)\n", name, res.Method)
		if res.Scores != nil {
			fmt.Printf("fit: mse=%.4f mape=%.4f r2=%.4f\n",
				res.Scores.MSE, res.Scores.MAPE, res.Scores.R2)
		}

		tbl, err := rforecast.ExtractTable(res, res.Horizon())
		if err != nil {
			fmt.Fprintf(os.Stderr, "extract %s: %v\n", name, err)
			os.Exit(1)
		}
		if err := tbl.TablePrint(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "print %s: %v\n", name, err)
			os.Exit(1)
		}

		if name == "thetaf" {
			plotRes = res
		}
	}

	if plotRes == nil {
		return
	}
	file, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer file.Close()

	if err := rforecast.PlotForecast(file, s, plotRes, "Theta Forecast"); err != nil {
		fmt.Fprintf(os.Stderr, "plot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nwrote %s\n", *out)
}

func loadSeries(path string, frequency int) (*timeseries.Series, error) {
	if path != "" {
		opts := timeseries.DefaultCSVOptions()
		opts.Frequency = frequency
		return timeseries.LoadCSV(path, opts)
	}

	// eight years of monthly data with a yearly swing over a slow trend
	months := 96
	y := make(timeseries.Seq, months)
	y.Add(timeseries.GenerateTrend(months, 110.0, 0.6)).
		Add(timeseries.GenerateWave(months, 16.0, frequency, 2.0)).
		Add(timeseries.GenerateNoise(months, 2.1))

	return y.Series(timeseries.NewStart(2017), frequency)
}
