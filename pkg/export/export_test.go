package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/derby/core/ppn"
)

var sample = []ppn.Heat{{1, 3, 2}, {2, 1, 3}, {3, 2, 1}}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))
	expected := "heat,lane1,lane2,lane3\n1,1,3,2\n2,2,1,3\n3,3,2,1\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "heat\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sample))
	expected := "" +
		"  Heat  Lane 1  Lane 2  Lane 3\n" +
		"     1       1       3       2\n" +
		"     2       2       1       3\n" +
		"     3       3       2       1\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteJSON(t *testing.T) {
	q := ppn.Evaluate(sample, 3)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Schedule{Lanes: 3, Cars: 3, Heats: sample, Quality: &q}))

	var got Schedule
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Lanes)
	assert.Equal(t, sample, got.Heats)
	require.NotNil(t, got.Quality)
	assert.Equal(t, []int{3, 3, 3}, got.Quality.RaceCounts)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Schedule{Lanes: 3, Cars: 3, Heats: sample}))
	assert.Contains(t, buf.String(), "heats: [[1, 3, 2], [2, 1, 3], [3, 2, 1]]")

	var got Schedule
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got.Heats)
	assert.Nil(t, got.Quality)
}

func TestWrite(t *testing.T) {
	s := Schedule{Lanes: 3, Cars: 3, Heats: sample}
	for _, f := range []string{"", FormatTable, FormatJSON, FormatCSV, FormatYAML, "YML"} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, s), f)
		assert.NotEmpty(t, buf.String(), f)
	}
	assert.Error(t, Write(&bytes.Buffer{}, "xml", s))
}
