package stats

import (
	"fmt"

	mstats "github.com/montanaflynn/stats"
)

// Summary holds the descriptive statistics the headless tools report.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes descriptive statistics over data. It fails on an empty
// input.
func Summarize(data []float64) (Summary, error) {
	mean, err := mstats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := mstats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}
	min, err := mstats.Min(data)
	if err != nil {
		return Summary{}, err
	}
	max, err := mstats.Max(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := mstats.Median(data)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, StdDev: stddev, Min: min, Max: max, Median: median}, nil
}

// String renders the summary on one line for report tables.
func (s Summary) String() string {
	return fmt.Sprintf("mean=%.4f sd=%.4f min=%.4f med=%.4f max=%.4f", s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}
