package bench

import (
	"math"
	"sort"
)

// Stats summarizes one phase's samples across measured cycles.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize reduces samples to summary statistics. StdDev is the
// population deviation; the median of an even count averages the two
// middle samples.
func Summarize(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	var sum, sqSum float64
	min, max := samples[0], samples[0]
	for _, v := range samples {
		sum += v
		sqSum += v * v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(samples))

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (median + sorted[len(sorted)/2-1]) / 2
	}

	variance := sqSum/float64(len(samples)) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return Stats{
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(variance),
		Min:    min,
		Max:    max,
	}
}
