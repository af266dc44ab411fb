package bitops

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetLogger(NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	buf.Reset()
	return &buf
}

func TestLogger_AllocFailure(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	_, err := Alloc(-8)
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "bitmap alloc failed", entry["msg"])
	assert.EqualValues(t, -8, entry["nbits"])
	assert.Contains(t, entry["error"], "negative")
}

func TestLogger_AllocSuccessIsDebug(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	_, err := Alloc(128)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	buf = captureLogger(t, slog.LevelDebug)
	_, err = Alloc(128)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"bitmap allocated"`)
	assert.Contains(t, buf.String(), `"words":`)
}

func TestLogger_Capabilities(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.LogCapabilities(context.Background())
	assert.Contains(t, buf.String(), "bitops capabilities")
	assert.Contains(t, buf.String(), "word_bits=")
	assert.Contains(t, buf.String(), "kernel=")
}

func TestSetLogger_ReportsCapabilities(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewLogger(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bitops capabilities", entry["msg"])
	assert.EqualValues(t, WordBits, entry["word_bits"])
	assert.NotEmpty(t, entry["kernel"])

	buf.Reset()
	SetLogger(nil)
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
}
