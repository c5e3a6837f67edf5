package ppn

import "math"

// tieEpsilon is how much a candidate must beat the current best by to replace
// it. Earlier candidates win ties.
const tieEpsilon = 1e-6

// Reorder returns the heats of raw in the order chosen by the weighted greedy
// search. With all weights at zero it returns a copy of raw unchanged. The
// result always contains the same heats as raw.
func Reorder(raw []Heat, lanes, cars int, w Weights) []Heat {
	out := make([]Heat, len(raw))
	if w.IsZero() {
		for i, h := range raw {
			out[i] = append(Heat(nil), h...)
		}
		return out
	}

	o := optimizer{
		raw:     raw,
		out:     out,
		lanes:   lanes,
		cars:    cars,
		w:       w,
		counts:  make([]int, cars),
		scratch: make([]int, cars),
	}
	used := make([]bool, len(raw))
	for i := range raw {
		best := -1
		bestScore := math.Inf(1)
		for j := range raw {
			if used[j] {
				continue
			}
			if s := o.score(i, j); s < bestScore-tieEpsilon {
				bestScore = s
				best = j
			}
		}
		o.commit(i, best)
		used[best] = true
	}
	return out
}

// optimizer holds the scratch state of a single Reorder call.
type optimizer struct {
	raw     []Heat
	out     []Heat
	lanes   int
	cars    int
	w       Weights
	counts  []int
	scratch []int
}

func (o *optimizer) score(i, j int) float64 {
	var s float64
	if o.w.Balance != 0 {
		s += float64(o.w.Balance) * o.balanceCost(i, j)
	}
	if i > 0 {
		if o.w.AvoidCompetitor != 0 {
			s += float64(o.w.AvoidCompetitor) * float64(competitorRepeats(o.raw[j], o.out[i-1]))
		}
		if o.w.AvoidLane != 0 {
			s += float64(o.w.AvoidLane) * float64(laneRepeats(o.raw[j], o.out[i-1]))
		}
	}
	return s
}

// balanceCost is the normalised squared deviation of race counts from their
// target if heat j were placed at position i.
func (o *optimizer) balanceCost(i, j int) float64 {
	copy(o.scratch, o.counts)
	for _, c := range o.raw[j] {
		o.scratch[c-1]++
	}
	slots := float64(i+1) * float64(o.lanes)
	target := slots / float64(o.cars)
	var dev float64
	for _, n := range o.scratch {
		d := float64(n) - target
		dev += d * d
	}
	return dev / slots
}

func (o *optimizer) commit(i, j int) {
	o.out[i] = append(Heat(nil), o.raw[j]...)
	for _, c := range o.raw[j] {
		o.counts[c-1]++
	}
}

// competitorRepeats counts ID matches over every lane pair of a and b.
func competitorRepeats(a, b Heat) int {
	n := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				n++
			}
		}
	}
	return n
}

// laneRepeats counts IDs that hold the same lane in a and b.
func laneRepeats(a, b Heat) int {
	n := 0
	for l := range a {
		if l < len(b) && a[l] == b[l] {
			n++
		}
	}
	return n
}
