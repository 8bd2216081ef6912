package model

import (
	"math"
)

type HoursReport struct {
	Hours HourHistogram
	Total int

	Repositories int
	Skipped      int
}

func NewHoursReport(hs []HourHistogram) *HoursReport {
	hours := SumHistograms(hs)

	return &HoursReport{
		Hours:        hours,
		Total:        hours.Total(),
		Repositories: len(hs),
	}
}

// Percentage of the total that falls in hour. With a zero total the result is NaN.
func (r *HoursReport) Percentage(hour int) float64 {
	if r.Total == 0 {
		return math.NaN()
	}

	return float64(r.Hours[hour]) / float64(r.Total) * 100
}
