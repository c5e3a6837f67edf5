package ppn

// Regression schedules for rounds=1, carried over from the scheduler this
// package replaced.

type zeroWeightCase struct {
	lanes int
	cars  int
	want  []Heat
}

func zeroWeightCases() []zeroWeightCase {
	return []zeroWeightCase{
		{2, 2, []Heat{{1, 2}, {2, 1}}},
		{3, 3, []Heat{{1, 3, 2}, {2, 1, 3}, {3, 2, 1}}},
		{4, 4, []Heat{{1, 4, 3, 2}, {2, 1, 4, 3}, {3, 2, 1, 4}, {4, 3, 2, 1}}},
		{5, 5, []Heat{{1, 3, 5, 2, 4}, {2, 4, 1, 3, 5}, {3, 5, 2, 4, 1}, {4, 1, 3, 5, 2}, {5, 2, 4, 1, 3}}},
		{6, 6, []Heat{{1, 6, 5, 4, 3, 2}, {2, 1, 6, 5, 4, 3}, {3, 2, 1, 6, 5, 4}, {4, 3, 2, 1, 6, 5}, {5, 4, 3, 2, 1, 6}, {6, 5, 4, 3, 2, 1}}},
		{2, 16, []Heat{{1, 8}, {2, 9}, {3, 10}, {4, 11}, {5, 12}, {6, 13}, {7, 14}, {8, 15}, {9, 16}, {10, 1}, {11, 2}, {12, 3}, {13, 4}, {14, 5}, {15, 6}, {16, 7}}},
		{2, 32, []Heat{{1, 13}, {2, 14}, {3, 15}, {4, 16}, {5, 17}, {6, 18}, {7, 19}, {8, 20}, {9, 21}, {10, 22}, {11, 23}, {12, 24}, {13, 25}, {14, 26}, {15, 27}, {16, 28}, {17, 29}, {18, 30}, {19, 31}, {20, 32}, {21, 1}, {22, 2}, {23, 3}, {24, 4}, {25, 5}, {26, 6}, {27, 7}, {28, 8}, {29, 9}, {30, 10}, {31, 11}, {32, 12}}},
		{2, 11, []Heat{{1, 6}, {2, 7}, {3, 8}, {4, 9}, {5, 10}, {6, 11}, {7, 1}, {8, 2}, {9, 3}, {10, 4}, {11, 5}}},
		{2, 13, []Heat{{1, 7}, {2, 8}, {3, 9}, {4, 10}, {5, 11}, {6, 12}, {7, 13}, {8, 1}, {9, 2}, {10, 3}, {11, 4}, {12, 5}, {13, 6}}},
		{2, 17, []Heat{{1, 9}, {2, 10}, {3, 11}, {4, 12}, {5, 13}, {6, 14}, {7, 15}, {8, 16}, {9, 17}, {10, 1}, {11, 2}, {12, 3}, {13, 4}, {14, 5}, {15, 6}, {16, 7}, {17, 8}}},
		{3, 16, []Heat{{1, 3, 6}, {2, 4, 7}, {3, 5, 8}, {4, 6, 9}, {5, 7, 10}, {6, 8, 11}, {7, 9, 12}, {8, 10, 13}, {9, 11, 14}, {10, 12, 15}, {11, 13, 16}, {12, 14, 1}, {13, 15, 2}, {14, 16, 3}, {15, 1, 4}, {16, 2, 5}}},
		{3, 32, []Heat{{1, 3, 6}, {2, 4, 7}, {3, 5, 8}, {4, 6, 9}, {5, 7, 10}, {6, 8, 11}, {7, 9, 12}, {8, 10, 13}, {9, 11, 14}, {10, 12, 15}, {11, 13, 16}, {12, 14, 17}, {13, 15, 18}, {14, 16, 19}, {15, 17, 20}, {16, 18, 21}, {17, 19, 22}, {18, 20, 23}, {19, 21, 24}, {20, 22, 25}, {21, 23, 26}, {22, 24, 27}, {23, 25, 28}, {24, 26, 29}, {25, 27, 30}, {26, 28, 31}, {27, 29, 32}, {28, 30, 1}, {29, 31, 2}, {30, 32, 3}, {31, 1, 4}, {32, 2, 5}}},
		{3, 11, []Heat{{1, 3, 6}, {2, 4, 7}, {3, 5, 8}, {4, 6, 9}, {5, 7, 10}, {6, 8, 11}, {7, 9, 1}, {8, 10, 2}, {9, 11, 3}, {10, 1, 4}, {11, 2, 5}}},
		{3, 13, []Heat{{1, 4, 13}, {2, 5, 1}, {3, 6, 2}, {4, 7, 3}, {5, 8, 4}, {6, 9, 5}, {7, 10, 6}, {8, 11, 7}, {9, 12, 8}, {10, 13, 9}, {11, 1, 10}, {12, 2, 11}, {13, 3, 12}}},
		{3, 17, []Heat{{1, 3, 6}, {2, 4, 7}, {3, 5, 8}, {4, 6, 9}, {5, 7, 10}, {6, 8, 11}, {7, 9, 12}, {8, 10, 13}, {9, 11, 14}, {10, 12, 15}, {11, 13, 16}, {12, 14, 17}, {13, 15, 1}, {14, 16, 2}, {15, 17, 3}, {16, 1, 4}, {17, 2, 5}}},
		{4, 16, []Heat{{1, 3, 6, 13}, {2, 4, 7, 14}, {3, 5, 8, 15}, {4, 6, 9, 16}, {5, 7, 10, 1}, {6, 8, 11, 2}, {7, 9, 12, 3}, {8, 10, 13, 4}, {9, 11, 14, 5}, {10, 12, 15, 6}, {11, 13, 16, 7}, {12, 14, 1, 8}, {13, 15, 2, 9}, {14, 16, 3, 10}, {15, 1, 4, 11}, {16, 2, 5, 12}}},
		{4, 32, []Heat{{1, 3, 6, 10}, {2, 4, 7, 11}, {3, 5, 8, 12}, {4, 6, 9, 13}, {5, 7, 10, 14}, {6, 8, 11, 15}, {7, 9, 12, 16}, {8, 10, 13, 17}, {9, 11, 14, 18}, {10, 12, 15, 19}, {11, 13, 16, 20}, {12, 14, 17, 21}, {13, 15, 18, 22}, {14, 16, 19, 23}, {15, 17, 20, 24}, {16, 18, 21, 25}, {17, 19, 22, 26}, {18, 20, 23, 27}, {19, 21, 24, 28}, {20, 22, 25, 29}, {21, 23, 26, 30}, {22, 24, 27, 31}, {23, 25, 28, 32}, {24, 26, 29, 1}, {25, 27, 30, 2}, {26, 28, 31, 3}, {27, 29, 32, 4}, {28, 30, 1, 5}, {29, 31, 2, 6}, {30, 32, 3, 7}, {31, 1, 4, 8}, {32, 2, 5, 9}}},
		{4, 11, []Heat{{1, 3, 5, 11}, {2, 4, 6, 1}, {3, 5, 7, 2}, {4, 6, 8, 3}, {5, 7, 9, 4}, {6, 8, 10, 5}, {7, 9, 11, 6}, {8, 10, 1, 7}, {9, 11, 2, 8}, {10, 1, 3, 9}, {11, 2, 4, 10}}},
		{4, 13, []Heat{{1, 3, 7, 6}, {2, 4, 8, 7}, {3, 5, 9, 8}, {4, 6, 10, 9}, {5, 7, 11, 10}, {6, 8, 12, 11}, {7, 9, 13, 12}, {8, 10, 1, 13}, {9, 11, 2, 1}, {10, 12, 3, 2}, {11, 13, 4, 3}, {12, 1, 5, 4}, {13, 2, 6, 5}}},
		{4, 17, []Heat{{1, 3, 6, 10}, {2, 4, 7, 11}, {3, 5, 8, 12}, {4, 6, 9, 13}, {5, 7, 10, 14}, {6, 8, 11, 15}, {7, 9, 12, 16}, {8, 10, 13, 17}, {9, 11, 14, 1}, {10, 12, 15, 2}, {11, 13, 16, 3}, {12, 14, 17, 4}, {13, 15, 1, 5}, {14, 16, 2, 6}, {15, 17, 3, 7}, {16, 1, 4, 8}, {17, 2, 5, 9}}},
		{5, 16, []Heat{{1, 3, 5, 9, 16}, {2, 4, 6, 10, 1}, {3, 5, 7, 11, 2}, {4, 6, 8, 12, 3}, {5, 7, 9, 13, 4}, {6, 8, 10, 14, 5}, {7, 9, 11, 15, 6}, {8, 10, 12, 16, 7}, {9, 11, 13, 1, 8}, {10, 12, 14, 2, 9}, {11, 13, 15, 3, 10}, {12, 14, 16, 4, 11}, {13, 15, 1, 5, 12}, {14, 16, 2, 6, 13}, {15, 1, 3, 7, 14}, {16, 2, 4, 8, 15}}},
		{5, 32, []Heat{{1, 2, 4, 8, 13}, {2, 3, 5, 9, 14}, {3, 4, 6, 10, 15}, {4, 5, 7, 11, 16}, {5, 6, 8, 12, 17}, {6, 7, 9, 13, 18}, {7, 8, 10, 14, 19}, {8, 9, 11, 15, 20}, {9, 10, 12, 16, 21}, {10, 11, 13, 17, 22}, {11, 12, 14, 18, 23}, {12, 13, 15, 19, 24}, {13, 14, 16, 20, 25}, {14, 15, 17, 21, 26}, {15, 16, 18, 22, 27}, {16, 17, 19, 23, 28}, {17, 18, 20, 24, 29}, {18, 19, 21, 25, 30}, {19, 20, 22, 26, 31}, {20, 21, 23, 27, 32}, {21, 22, 24, 28, 1}, {22, 23, 25, 29, 2}, {23, 24, 26, 30, 3}, {24, 25, 27, 31, 4}, {25, 26, 28, 32, 5}, {26, 27, 29, 1, 6}, {27, 28, 30, 2, 7}, {28, 29, 31, 3, 8}, {29, 30, 32, 4, 9}, {30, 31, 1, 5, 10}, {31, 32, 2, 6, 11}, {32, 1, 3, 7, 12}}},
		{5, 11, []Heat{{1, 3, 5, 8, 2}, {2, 4, 6, 9, 3}, {3, 5, 7, 10, 4}, {4, 6, 8, 11, 5}, {5, 7, 9, 1, 6}, {6, 8, 10, 2, 7}, {7, 9, 11, 3, 8}, {8, 10, 1, 4, 9}, {9, 11, 2, 5, 10}, {10, 1, 3, 6, 11}, {11, 2, 4, 7, 1}}},
		{5, 13, []Heat{{1, 3, 5, 8, 2}, {2, 4, 6, 9, 3}, {3, 5, 7, 10, 4}, {4, 6, 8, 11, 5}, {5, 7, 9, 12, 6}, {6, 8, 10, 13, 7}, {7, 9, 11, 1, 8}, {8, 10, 12, 2, 9}, {9, 11, 13, 3, 10}, {10, 12, 1, 4, 11}, {11, 13, 2, 5, 12}, {12, 1, 3, 6, 13}, {13, 2, 4, 7, 1}}},
		{5, 17, []Heat{{1, 3, 5, 9, 8}, {2, 4, 6, 10, 9}, {3, 5, 7, 11, 10}, {4, 6, 8, 12, 11}, {5, 7, 9, 13, 12}, {6, 8, 10, 14, 13}, {7, 9, 11, 15, 14}, {8, 10, 12, 16, 15}, {9, 11, 13, 17, 16}, {10, 12, 14, 1, 17}, {11, 13, 15, 2, 1}, {12, 14, 16, 3, 2}, {13, 15, 17, 4, 3}, {14, 16, 1, 5, 4}, {15, 17, 2, 6, 5}, {16, 1, 3, 7, 6}, {17, 2, 4, 8, 7}}},
		{6, 16, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 1}, {4, 5, 7, 9, 12, 2}, {5, 6, 8, 10, 13, 3}, {6, 7, 9, 11, 14, 4}, {7, 8, 10, 12, 15, 5}, {8, 9, 11, 13, 16, 6}, {9, 10, 12, 14, 1, 7}, {10, 11, 13, 15, 2, 8}, {11, 12, 14, 16, 3, 9}, {12, 13, 15, 1, 4, 10}, {13, 14, 16, 2, 5, 11}, {14, 15, 1, 3, 6, 12}, {15, 16, 2, 4, 7, 13}, {16, 1, 3, 5, 8, 14}}},
		{6, 32, []Heat{{1, 5, 6, 8, 16, 32}, {2, 6, 7, 9, 17, 1}, {3, 7, 8, 10, 18, 2}, {4, 8, 9, 11, 19, 3}, {5, 9, 10, 12, 20, 4}, {6, 10, 11, 13, 21, 5}, {7, 11, 12, 14, 22, 6}, {8, 12, 13, 15, 23, 7}, {9, 13, 14, 16, 24, 8}, {10, 14, 15, 17, 25, 9}, {11, 15, 16, 18, 26, 10}, {12, 16, 17, 19, 27, 11}, {13, 17, 18, 20, 28, 12}, {14, 18, 19, 21, 29, 13}, {15, 19, 20, 22, 30, 14}, {16, 20, 21, 23, 31, 15}, {17, 21, 22, 24, 32, 16}, {18, 22, 23, 25, 1, 17}, {19, 23, 24, 26, 2, 18}, {20, 24, 25, 27, 3, 19}, {21, 25, 26, 28, 4, 20}, {22, 26, 27, 29, 5, 21}, {23, 27, 28, 30, 6, 22}, {24, 28, 29, 31, 7, 23}, {25, 29, 30, 32, 8, 24}, {26, 30, 31, 1, 9, 25}, {27, 31, 32, 2, 10, 26}, {28, 32, 1, 3, 11, 27}, {29, 1, 2, 4, 12, 28}, {30, 2, 3, 5, 13, 29}, {31, 3, 4, 6, 14, 30}, {32, 4, 5, 7, 15, 31}}},
		{6, 11, []Heat{{1, 3, 5, 8, 2, 6}, {2, 4, 6, 9, 3, 7}, {3, 5, 7, 10, 4, 8}, {4, 6, 8, 11, 5, 9}, {5, 7, 9, 1, 6, 10}, {6, 8, 10, 2, 7, 11}, {7, 9, 11, 3, 8, 1}, {8, 10, 1, 4, 9, 2}, {9, 11, 2, 5, 10, 3}, {10, 1, 3, 6, 11, 4}, {11, 2, 4, 7, 1, 5}}},
		{6, 13, []Heat{{1, 3, 5, 7, 10, 2}, {2, 4, 6, 8, 11, 3}, {3, 5, 7, 9, 12, 4}, {4, 6, 8, 10, 13, 5}, {5, 7, 9, 11, 1, 6}, {6, 8, 10, 12, 2, 7}, {7, 9, 11, 13, 3, 8}, {8, 10, 12, 1, 4, 9}, {9, 11, 13, 2, 5, 10}, {10, 12, 1, 3, 6, 11}, {11, 13, 2, 4, 7, 12}, {12, 1, 3, 5, 8, 13}, {13, 2, 4, 6, 9, 1}}},
		{6, 17, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {4, 5, 7, 9, 12, 1}, {5, 6, 8, 10, 13, 2}, {6, 7, 9, 11, 14, 3}, {7, 8, 10, 12, 15, 4}, {8, 9, 11, 13, 16, 5}, {9, 10, 12, 14, 17, 6}, {10, 11, 13, 15, 1, 7}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {13, 14, 16, 1, 4, 10}, {14, 15, 17, 2, 5, 11}, {15, 16, 1, 3, 6, 12}, {16, 17, 2, 4, 7, 13}, {17, 1, 3, 5, 8, 14}}},
	}
}

type weightedCase struct {
	weights Weights
	want    []Heat
}

// weighted6x17Cases all use 6 lanes and 17 cars.
func weighted6x17Cases() []weightedCase {
	return []weightedCase{
		{Weights{Heavy, Zero, Zero}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {8, 9, 11, 13, 16, 5}, {9, 10, 12, 14, 17, 6}, {10, 11, 13, 15, 1, 7}, {11, 12, 14, 16, 2, 8}, {4, 5, 7, 9, 12, 1}, {12, 13, 15, 17, 3, 9}, {13, 14, 16, 1, 4, 10}, {14, 15, 17, 2, 5, 11}, {5, 6, 8, 10, 13, 2}, {15, 16, 1, 3, 6, 12}, {6, 7, 9, 11, 14, 3}, {7, 8, 10, 12, 15, 4}, {16, 17, 2, 4, 7, 13}, {17, 1, 3, 5, 8, 14}}},
		{Weights{Zero, Heavy, Zero}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {4, 5, 7, 9, 12, 1}, {5, 6, 8, 10, 13, 2}, {6, 7, 9, 11, 14, 3}, {7, 8, 10, 12, 15, 4}, {8, 9, 11, 13, 16, 5}, {9, 10, 12, 14, 17, 6}, {10, 11, 13, 15, 1, 7}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {13, 14, 16, 1, 4, 10}, {14, 15, 17, 2, 5, 11}, {15, 16, 1, 3, 6, 12}, {16, 17, 2, 4, 7, 13}, {17, 1, 3, 5, 8, 14}}},
		{Weights{Zero, Zero, Heavy}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {4, 5, 7, 9, 12, 1}, {5, 6, 8, 10, 13, 2}, {6, 7, 9, 11, 14, 3}, {7, 8, 10, 12, 15, 4}, {8, 9, 11, 13, 16, 5}, {9, 10, 12, 14, 17, 6}, {10, 11, 13, 15, 1, 7}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {13, 14, 16, 1, 4, 10}, {14, 15, 17, 2, 5, 11}, {15, 16, 1, 3, 6, 12}, {16, 17, 2, 4, 7, 13}, {17, 1, 3, 5, 8, 14}}},
		{Weights{Light, Medium, Heavy}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {10, 11, 13, 15, 1, 7}, {9, 10, 12, 14, 17, 6}, {8, 9, 11, 13, 16, 5}, {7, 8, 10, 12, 15, 4}, {17, 1, 3, 5, 8, 14}, {16, 17, 2, 4, 7, 13}, {15, 16, 1, 3, 6, 12}, {14, 15, 17, 2, 5, 11}, {4, 5, 7, 9, 12, 1}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {5, 6, 8, 10, 13, 2}, {6, 7, 9, 11, 14, 3}, {13, 14, 16, 1, 4, 10}}},
		{Weights{Heavy, Light, Medium}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {10, 11, 13, 15, 1, 7}, {9, 10, 12, 14, 17, 6}, {8, 9, 11, 13, 16, 5}, {17, 1, 3, 5, 8, 14}, {7, 8, 10, 12, 15, 4}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {13, 14, 16, 1, 4, 10}, {6, 7, 9, 11, 14, 3}, {16, 17, 2, 4, 7, 13}, {15, 16, 1, 3, 6, 12}, {5, 6, 8, 10, 13, 2}, {4, 5, 7, 9, 12, 1}, {14, 15, 17, 2, 5, 11}}},
		{Weights{Medium, Heavy, Light}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {10, 11, 13, 15, 1, 7}, {9, 10, 12, 14, 17, 6}, {8, 9, 11, 13, 16, 5}, {7, 8, 10, 12, 15, 4}, {17, 1, 3, 5, 8, 14}, {16, 17, 2, 4, 7, 13}, {15, 16, 1, 3, 6, 12}, {14, 15, 17, 2, 5, 11}, {4, 5, 7, 9, 12, 1}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {5, 6, 8, 10, 13, 2}, {6, 7, 9, 11, 14, 3}, {13, 14, 16, 1, 4, 10}}},
		{Weights{Medium, Medium, Medium}, []Heat{{1, 2, 4, 6, 9, 15}, {2, 3, 5, 7, 10, 16}, {3, 4, 6, 8, 11, 17}, {10, 11, 13, 15, 1, 7}, {9, 10, 12, 14, 17, 6}, {8, 9, 11, 13, 16, 5}, {7, 8, 10, 12, 15, 4}, {17, 1, 3, 5, 8, 14}, {16, 17, 2, 4, 7, 13}, {15, 16, 1, 3, 6, 12}, {14, 15, 17, 2, 5, 11}, {4, 5, 7, 9, 12, 1}, {11, 12, 14, 16, 2, 8}, {12, 13, 15, 17, 3, 9}, {5, 6, 8, 10, 13, 2}, {6, 7, 9, 11, 14, 3}, {13, 14, 16, 1, 4, 10}}},
	}
}
