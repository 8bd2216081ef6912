package model

import (
	"github.com/samber/lo"
)

const HoursPerDay = 24

// HourHistogram counts commits by local hour of day. Index is the hour (0-23).
type HourHistogram [HoursPerDay]int

func (h *HourHistogram) Increment(hour int) {
	h[hour]++
}

func (h HourHistogram) Total() int {
	return lo.Sum(h[:])
}

func (h HourHistogram) Add(other HourHistogram) HourHistogram {
	var result HourHistogram
	for i := range result {
		result[i] = h[i] + other[i]
	}
	return result
}

func SumHistograms(hs []HourHistogram) HourHistogram {
	return lo.Reduce(hs, func(agg HourHistogram, h HourHistogram, _ int) HourHistogram {
		return agg.Add(h)
	}, HourHistogram{})
}
