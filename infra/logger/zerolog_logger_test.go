package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerComponentField(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "builder")
	l.Warnf("clamped to %d rounds", 4)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "builder", line["component"])
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "clamped to 4 rounds", line["message"])
}

func TestZerologLoggerLevel(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "test")
	l.Infof("hidden")
	l.Debugw("hidden", map[string]any{"k": 1})
	assert.Empty(t, buf.String())
	l.Errorf("shown")
	assert.Contains(t, buf.String(), "shown")
}
