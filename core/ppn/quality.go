package ppn

import "gonum.org/v1/gonum/stat"

// Quality summarises how well a schedule meets the three objectives.
type Quality struct {
	Heats int `json:"heats"`
	// RaceCounts[i] is the number of heats competitor i+1 runs in.
	RaceCounts   []int   `json:"race_counts"`
	MeanRaces    float64 `json:"mean_races"`
	RaceVariance float64 `json:"race_variance"`
	// CompetitorRepeats counts competitors racing in back-to-back heats.
	CompetitorRepeats int `json:"competitor_repeats"`
	// LaneRepeats counts competitors keeping their lane in back-to-back heats.
	LaneRepeats int `json:"lane_repeats"`
}

// Evaluate computes the quality report of heats for cars competitors.
func Evaluate(heats []Heat, cars int) Quality {
	q := Quality{Heats: len(heats), RaceCounts: make([]int, cars)}
	for i, h := range heats {
		for _, c := range h {
			if c >= 1 && c <= cars {
				q.RaceCounts[c-1]++
			}
		}
		if i > 0 {
			q.CompetitorRepeats += competitorRepeats(h, heats[i-1])
			q.LaneRepeats += laneRepeats(h, heats[i-1])
		}
	}
	if cars > 0 {
		xs := make([]float64, cars)
		for i, n := range q.RaceCounts {
			xs[i] = float64(n)
		}
		q.MeanRaces = stat.Mean(xs, nil)
		if cars > 1 {
			q.RaceVariance = stat.PopVariance(xs, nil)
		}
	}
	return q
}
