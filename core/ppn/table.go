package ppn

// GeneratorSpec is one row of the generator table. It applies to every
// competitor count in [Low, High] for its lane count.
type GeneratorSpec struct {
	Low            int
	High           int
	RoundSelectors []int
	LaneIncrements []int
}

// MaxRounds is the number of full rounds the row can generate.
func (g GeneratorSpec) MaxRounds() int { return len(g.RoundSelectors) }

const (
	MinLanes = 2
	MaxLanes = 6
	MinCars  = 2
	MaxCars  = 200
)

// generatorTable holds the Young and Pope generator constants keyed by lane
// count. Rows are scanned in order; bounds are contiguous up to MaxCars.
var generatorTable = map[int][]GeneratorSpec{
	2: {
		{2, 2, []int{3, 3}, []int{1, 1}},
		{3, 3, []int{2, 3}, []int{2, 1}},
		{4, 4, []int{1, 1}, []int{3, 2}},
		{5, 5, []int{1, 2, 1, 3}, []int{3, 4, 2, 1}},
		{6, 6, []int{1, 1}, []int{2, 5}},
		{7, 7, []int{1, 1, 2, 1, 1, 3}, []int{3, 2, 1, 4, 5, 6}},
		{8, 8, []int{1, 1, 1}, []int{3, 2, 1}},
		{9, 9, []int{1, 1, 1, 2, 1, 1, 1, 3}, []int{4, 3, 2, 1, 5, 6, 7, 8}},
		{10, 10, []int{1, 1, 1, 1}, []int{4, 3, 2, 1}},
		{11, 11, []int{1, 1, 1, 1, 2, 1, 1, 1, 1, 3}, []int{5, 4, 3, 2, 1, 6, 7, 8, 9, 10}},
		{12, 12, []int{1, 1, 1, 1, 1}, []int{5, 4, 3, 2, 1}},
		{13, 13, []int{1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 3}, []int{6, 5, 4, 3, 2, 1, 7, 8, 9, 10, 11, 12}},
		{14, 14, []int{1, 1, 1, 1, 1, 1}, []int{6, 5, 4, 3, 2, 1}},
		{15, 15, []int{1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1}, []int{7, 6, 5, 4, 3, 2, 1, 8, 9, 10, 11, 12}},
		{16, 16, []int{1, 1, 1, 1, 1, 1, 1}, []int{7, 6, 5, 4, 3, 2, 1}},
		{17, 17, []int{1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1}, []int{8, 7, 6, 5, 4, 3, 2, 1, 9, 10, 11, 12}},
		{18, 18, []int{1, 1, 1, 1, 1, 1, 1, 1}, []int{8, 7, 6, 5, 4, 3, 2, 1}},
		{19, 19, []int{1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1}, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 10, 11, 12}},
		{20, 20, []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{21, 21, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1}, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 11, 12}},
		{22, 22, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{23, 23, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1}, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 12}},
		{24, 24, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{25, 25, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2}, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{26, 200, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
	},
	3: {
		{3, 3, []int{2, 3}, []int{2, 2, 1, 1}},
		{4, 4, []int{2, 3}, []int{3, 3, 1, 1}},
		{5, 5, []int{1, 2, 1, 3}, []int{2, 2, 1, 1, 3, 3, 4, 4}},
		{6, 6, []int{1, 1}, []int{2, 3, 5, 2}},
		{7, 7, []int{2, 3}, []int{2, 4, 5, 3}},
		{8, 8, []int{1, 1}, []int{2, 5, 3, 4}},
		{9, 9, []int{1, 1}, []int{2, 3, 3, 5}},
		{10, 10, []int{1, 1}, []int{2, 7, 4, 5}},
		{11, 11, []int{1, 1}, []int{2, 3, 3, 7}},
		{12, 12, []int{1}, []int{2, 3}},
		{13, 13, []int{1, 2, 1, 3}, []int{3, 9, 7, 11, 10, 4, 6, 2}},
		{14, 14, []int{1}, []int{2, 3}},
		{15, 15, []int{1, 1}, []int{2, 3, 6, 8}},
		{16, 16, []int{1, 1}, []int{2, 3, 6, 9}},
		{17, 18, []int{1, 1}, []int{2, 3, 4, 6}},
		{19, 19, []int{1, 1, 2, 1, 1, 3}, []int{2, 3, 4, 6, 1, 7, 17, 16, 15, 13, 18, 12}},
		{20, 20, []int{1, 1}, []int{2, 3, 4, 7}},
		{21, 200, []int{1, 1}, []int{2, 3, 4, 6}},
	},
	4: {
		{4, 4, []int{2, 3}, []int{3, 3, 3, 1, 1, 1}},
		{5, 5, []int{2, 3}, []int{2, 2, 2, 3, 3, 3}},
		{6, 6, []int{1, 1}, []int{2, 2, 3, 3, 5, 5}},
		{7, 7, []int{2, 3}, []int{2, 2, 4, 5, 5, 3}},
		{8, 8, []int{1, 1}, []int{2, 2, 3, 3, 4, 2}},
		{9, 9, []int{1, 2}, []int{2, 2, 4, 3, 5, 3}},
		{10, 10, []int{1, 1}, []int{2, 2, 5, 3, 3, 6}},
		{11, 11, []int{1, 1}, []int{2, 2, 6, 3, 3, 4}},
		{12, 12, []int{1, 1}, []int{2, 4, 5, 3, 2, 8}},
		{13, 13, []int{2, 3}, []int{2, 4, 12, 11, 9, 1}},
		{14, 14, []int{1, 1}, []int{2, 4, 13, 3, 5, 2}},
		{15, 15, []int{1, 1}, []int{2, 3, 4, 3, 2, 9}},
		{16, 16, []int{1, 1}, []int{2, 3, 7, 3, 5, 9}},
		{17, 17, []int{1, 1}, []int{2, 3, 4, 3, 2, 11}},
		{18, 18, []int{1, 1}, []int{2, 3, 7, 3, 5, 9}},
		{19, 19, []int{1, 1}, []int{2, 3, 4, 3, 5, 13}},
		{20, 20, []int{1, 1}, []int{2, 14, 11, 12, 18, 3}},
		{21, 21, []int{1, 1}, []int{4, 5, 10, 5, 13, 7}},
		{22, 22, []int{1, 1}, []int{4, 5, 7, 8, 12, 21}},
		{23, 23, []int{1, 1}, []int{4, 7, 10, 3, 5, 14}},
		{24, 26, []int{1}, []int{2, 3, 4}},
		{27, 27, []int{1, 1}, []int{4, 5, 6, 7, 19, 25}},
		{28, 28, []int{1, 1}, []int{4, 5, 6, 7, 20, 26}},
		{29, 29, []int{1, 1}, []int{2, 3, 4, 6, 11, 28}},
		{30, 30, []int{1, 1}, []int{2, 3, 4, 6, 11, 29}},
		{31, 31, []int{1, 1}, []int{2, 3, 4, 6, 11, 30}},
		{32, 32, []int{1, 1}, []int{2, 3, 4, 6, 12, 31}},
		{33, 33, []int{1, 1}, []int{2, 3, 4, 6, 12, 32}},
		{34, 34, []int{1, 1}, []int{2, 3, 4, 6, 13, 33}},
		{35, 35, []int{1, 1}, []int{2, 3, 4, 6, 8, 10}},
		{36, 36, []int{1, 1}, []int{2, 3, 4, 6, 8, 12}},
		{37, 37, []int{1, 1}, []int{2, 3, 4, 6, 8, 10}},
		{38, 38, []int{1, 1}, []int{2, 3, 4, 6, 8, 13}},
		{39, 41, []int{1, 1}, []int{2, 3, 4, 6, 8, 10}},
		{42, 42, []int{1, 1}, []int{2, 3, 4, 6, 8, 11}},
		{43, 47, []int{1, 1}, []int{2, 3, 4, 6, 8, 10}},
		{48, 48, []int{1, 1}, []int{2, 3, 4, 6, 8, 11}},
		{49, 200, []int{1, 1}, []int{2, 3, 4, 6, 8, 10}},
	},
	5: {
		{5, 5, []int{2, 3, 2, 3}, []int{2, 2, 2, 2, 3, 3, 3, 3, 1, 1, 1, 1, 4, 4, 4, 4}},
		{6, 6, []int{2, 3}, []int{5, 5, 5, 5, 1, 1, 1, 1}},
		{7, 7, []int{1, 1}, []int{2, 2, 2, 2, 3, 3, 3, 3}},
		{8, 8, []int{1, 1}, []int{2, 2, 3, 2, 3, 3, 4, 5}},
		{9, 9, []int{1, 2}, []int{2, 2, 2, 4, 3, 3, 5, 8}},
		{10, 10, []int{1, 1}, []int{2, 2, 3, 4, 3, 3, 6, 9}},
		{11, 11, []int{2, 3}, []int{2, 2, 3, 5, 9, 9, 8, 6}},
		{12, 12, []int{1, 1}, []int{2, 2, 3, 6, 3, 3, 2, 8}},
		{13, 13, []int{1, 1}, []int{2, 2, 3, 7, 3, 3, 2, 4}},
		{14, 14, []int{1}, []int{2, 2, 3, 6}},
		{15, 15, []int{1, 1}, []int{2, 2, 3, 9, 3, 4, 2, 5}},
		{16, 16, []int{1, 1}, []int{2, 2, 4, 7, 3, 3, 6, 5}},
		{17, 17, []int{1, 1}, []int{2, 2, 4, 16, 3, 3, 2, 8}},
		{18, 18, []int{1, 1}, []int{2, 3, 4, 8, 3, 2, 2, 10}},
		{19, 19, []int{1, 1}, []int{2, 2, 7, 13, 3, 3, 2, 10}},
		{20, 20, []int{0, 0}, []int{2, 2, 3, 7, 3, 3, 2, 4}},
		{21, 21, []int{2, 3}, []int{2, 5, 4, 18, 19, 16, 17, 3}},
		{22, 22, []int{0, 0}, []int{2, 2, 3, 7, 3, 3, 2, 4}},
		{23, 23, []int{1, 1}, []int{2, 3, 8, 16, 3, 2, 7, 10}},
		{24, 24, []int{1, 1}, []int{2, 5, 4, 21, 3, 2, 6, 4}},
		{25, 25, []int{1, 1}, []int{2, 3, 4, 10, 3, 2, 7, 12}},
		{26, 26, []int{1, 1}, []int{2, 3, 7, 25, 3, 2, 4, 4}},
		{27, 27, []int{1, 1}, []int{2, 3, 4, 6, 3, 2, 6, 20}},
		{28, 28, []int{1, 1}, []int{2, 3, 4, 8, 3, 2, 8, 14}},
		{29, 29, []int{1, 1}, []int{2, 3, 4, 6, 3, 2, 7, 28}},
		{30, 30, []int{1, 1}, []int{2, 3, 4, 10, 3, 4, 8, 16}},
		{31, 31, []int{1, 1}, []int{2, 3, 4, 6, 3, 2, 18, 30}},
		{32, 32, []int{1, 1}, []int{1, 2, 4, 5, 2, 6, 7, 3}},
		{33, 33, []int{1, 1}, []int{2, 3, 4, 6, 3, 5, 12, 32}},
		{34, 34, []int{1, 1}, []int{2, 3, 4, 6, 3, 5, 12, 33}},
		{35, 35, []int{1, 1}, []int{1, 2, 4, 5, 2, 6, 10, 4}},
		{36, 49, []int{1}, []int{2, 3, 4, 6}},
		{50, 50, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 34}},
		{51, 51, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 18, 34}},
		{52, 52, []int{1}, []int{2, 3, 4, 6}},
		{53, 53, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 18, 36}},
		{54, 54, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 38}},
		{55, 55, []int{1, 1}, []int{2, 3, 4, 6, 8, 12, 17, 54}},
		{56, 56, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 21, 55}},
		{57, 57, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 41}},
		{58, 58, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 42}},
		{59, 59, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 43}},
		{60, 60, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 44}},
		{61, 160, []int{1}, []int{2, 3, 4, 6}},
		{161, 200, []int{1, 1}, []int{2, 3, 4, 6, 8, 11, 17, 44}},
	},
	6: {
		{6, 6, []int{2, 3}, []int{5, 5, 5, 5, 5, 1, 1, 1, 1, 1}},
		{7, 7, []int{2, 3}, []int{2, 2, 2, 2, 2, 5, 5, 5, 5, 5}},
		{8, 8, []int{1}, []int{2, 2, 2, 3, 2}},
		{9, 9, []int{1}, []int{2, 2, 2, 2, 4}},
		{10, 10, []int{1}, []int{2, 2, 2, 3, 2}},
		{11, 11, []int{2}, []int{2, 2, 3, 5, 4}},
		{12, 12, []int{1}, []int{2, 2, 2, 3, 4}},
		{13, 13, []int{1}, []int{2, 2, 2, 3, 5}},
		{14, 14, []int{1}, []int{2, 2, 2, 3, 6}},
		{15, 15, []int{1}, []int{2, 2, 2, 3, 7}},
		{16, 17, []int{0}, []int{1, 2, 2, 3, 6}},
		{18, 18, []int{1}, []int{2, 2, 3, 5, 9}},
		{19, 19, []int{1}, []int{2, 2, 3, 4, 9}},
		{20, 20, []int{1}, []int{2, 2, 3, 4, 19}},
		{21, 21, []int{1}, []int{2, 2, 3, 4, 20}},
		{22, 22, []int{1}, []int{2, 2, 3, 4, 21}},
		{23, 23, []int{1}, []int{2, 2, 3, 4, 22}},
		{24, 24, []int{1}, []int{2, 2, 3, 6, 23}},
		{25, 25, []int{1}, []int{2, 2, 3, 6, 24}},
		{26, 26, []int{1}, []int{2, 2, 3, 6, 25}},
		{27, 27, []int{1}, []int{2, 2, 3, 6, 26}},
		{28, 28, []int{1}, []int{2, 5, 11, 4, 27}},
		{29, 30, []int{0}, []int{2, 3, 7, 15, 17}},
		{31, 31, []int{2}, []int{2, 3, 7, 15, 17}},
		{32, 34, []int{0}, []int{4, 1, 2, 8, 16}},
		{35, 35, []int{1}, []int{2, 3, 7, 19, 17}},
		{36, 36, []int{1}, []int{2, 3, 7, 20, 17}},
		{37, 37, []int{1}, []int{2, 3, 4, 10, 12}},
		{38, 38, []int{1}, []int{2, 3, 4, 8, 10}},
		{39, 39, []int{1}, []int{2, 3, 4, 19, 38}},
		{40, 40, []int{1}, []int{2, 3, 4, 6, 8}},
		{41, 41, []int{1}, []int{2, 3, 4, 6, 12}},
		{42, 42, []int{1}, []int{2, 3, 4, 8, 14}},
		{43, 43, []int{1}, []int{2, 3, 4, 6, 8}},
		{44, 44, []int{1}, []int{2, 3, 4, 6, 11}},
		{45, 45, []int{1}, []int{2, 3, 4, 6, 8}},
		{46, 46, []int{1}, []int{2, 3, 4, 6, 11}},
		{47, 200, []int{1}, []int{2, 3, 4, 6, 8}},
	},
}

// Lookup returns the generator row for the given lane and competitor counts.
// The lane count is narrowed to cars when there are fewer cars than lanes.
func Lookup(lanes, cars int) (GeneratorSpec, error) {
	if cars < lanes {
		lanes = cars
	}
	for _, row := range generatorTable[lanes] {
		if row.Low <= cars && cars <= row.High {
			return row, nil
		}
	}
	return GeneratorSpec{}, &ConfigurationError{Lanes: lanes, Cars: cars}
}

// EffectiveLanes is the lane count actually used for cars competitors.
func EffectiveLanes(lanes, cars int) int {
	if cars < lanes {
		return cars
	}
	return lanes
}
