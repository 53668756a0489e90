package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var ErrNoCSVData = errors.New("no usable data found in csv")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	HasHeader   bool   // Whether the file has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at the start
	Start       Start  // Start assigned to the loaded series (default: 1)
	Frequency   int    // Frequency assigned to the loaded series (default: 1)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
		Start:       NewStart(1),
		Frequency:   1,
	}
}

// LoadCSV loads a series from a CSV file. Missing markers such as NA become
// NaN observations so the sample positions stay aligned.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, ErrNoCSVData
			}
			return nil, err
		}
	}

	valueIdx := -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoCSVData
		}
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")) {
				valueIdx = i
				break
			}
		}
		if valueIdx == -1 {
			// fall back to the last column
			valueIdx = len(header) - 1
		}
	} else {
		valueIdx = 0
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			values = append(values, math.NaN())
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q, %w", valStr, err)
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, ErrNoCSVData
	}

	frequency := opts.Frequency
	if frequency == 0 {
		frequency = 1
	}
	return New(values, opts.Start, frequency)
}

// SaveCSV saves a series to a CSV file with a fractional time column. NaN
// observations are written as NA.
func SaveCSV(s *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return s.WriteCSV(writer)
}

// WriteCSV writes the series to w with a header row of "time,y".
func (s *Series) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"time", "y"}); err != nil {
		return err
	}
	for i, v := range s.values {
		record := []string{
			strconv.FormatFloat(s.TimeAt(i), 'g', -1, 64),
			formatObservation(v),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatObservation(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
