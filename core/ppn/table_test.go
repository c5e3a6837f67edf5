package ppn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorTableContiguous(t *testing.T) {
	for lanes := MinLanes; lanes <= MaxLanes; lanes++ {
		rows := generatorTable[lanes]
		require.NotEmpty(t, rows, "lanes=%d", lanes)
		assert.Equal(t, lanes, rows[0].Low, "first row of lanes=%d", lanes)
		next := rows[0].Low
		for _, row := range rows {
			assert.Equal(t, next, row.Low, "gap before lanes=%d low=%d", lanes, row.Low)
			assert.LessOrEqual(t, row.Low, row.High)
			next = row.High + 1
		}
		assert.Equal(t, MaxCars+1, next, "lanes=%d must reach %d cars", lanes, MaxCars)
	}
}

func TestGeneratorTableShape(t *testing.T) {
	for lanes, rows := range generatorTable {
		for _, row := range rows {
			assert.Len(t, row.LaneIncrements, row.MaxRounds()*(lanes-1),
				"lanes=%d low=%d", lanes, row.Low)
			for _, g := range row.LaneIncrements {
				// a single wrap in Build relies on this
				assert.True(t, g >= 0 && g <= row.Low, "lanes=%d low=%d increment %d", lanes, row.Low, g)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	spec, err := Lookup(2, 30)
	require.NoError(t, err)
	assert.Equal(t, 26, spec.Low)
	assert.Equal(t, 200, spec.High)
	assert.Equal(t, []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, spec.LaneIncrements)

	spec, err = Lookup(5, 100)
	require.NoError(t, err)
	assert.Equal(t, GeneratorSpec{Low: 61, High: 160, RoundSelectors: []int{1}, LaneIncrements: []int{2, 3, 4, 6}}, spec)
}

func TestLookupNarrowsLanes(t *testing.T) {
	spec, err := Lookup(6, 3)
	require.NoError(t, err)
	want, err := Lookup(3, 3)
	require.NoError(t, err)
	assert.Equal(t, want, spec)
	assert.Equal(t, 3, EffectiveLanes(6, 3))
	assert.Equal(t, 4, EffectiveLanes(4, 9))
}

func TestLookupNoRow(t *testing.T) {
	for _, tc := range []struct{ lanes, cars int }{{7, 10}, {4, 201}, {1, 1}} {
		_, err := Lookup(tc.lanes, tc.cars)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfiguration))
		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr)
	}
}
