package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLines parses every JSON line written by a logger.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_JSONEntry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.InfoLevel, "arraysum")
	logger.Info("benchmark finished",
		Int("elements", 1000),
		Uint64("seed", 42),
		Float64("speedup", 2.5),
		Bool("consistent", true),
		String("executor", "pool"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "benchmark finished", e["message"])
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, "arraysum", e["component"])
	assert.Equal(t, float64(1000), e["elements"])
	assert.Equal(t, float64(42), e["seed"])
	assert.Equal(t, 2.5, e["speedup"])
	assert.Equal(t, true, e["consistent"])
	assert.Equal(t, "pool", e["executor"])
	assert.Contains(t, e, "time")
}

func TestNewLogger_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.WarnLevel, "arraysum")
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
}

func TestZerologAdapter_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr any
	}{
		{"with cause", errors.New("length mismatch"), "length mismatch"},
		{"nil cause", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, zerolog.DebugLevel, "test").Error("benchmark aborted", tt.err, Int("chunks", 10))

			entries := decodeLines(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, "error", entries[0]["level"])
			assert.Equal(t, tt.wantErr, entries[0]["error"])
			assert.Equal(t, float64(10), entries[0]["chunks"])
		})
	}
}

func TestApplyFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		want  any
	}{
		{"string", String("kernel", "vector"), "vector"},
		{"int", Int("runs", 3), float64(3)},
		{"int64", Field{Key: "v", Value: int64(-7)}, float64(-7)},
		{"uint64", Uint64("v", 1<<40), float64(1 << 40)},
		{"float64", Float64("v", 0.25), 0.25},
		{"bool", Bool("v", false), false},
		{"duration", Duration("v", 1500*time.Millisecond), float64(1500)},
		{"error", Field{Key: "v", Value: errors.New("boom")}, "boom"},
		{"other", Field{Key: "v", Value: []int{1, 2}}, []any{float64(1), float64(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, zerolog.DebugLevel, "test").Debug("field", tt.field)

			entries := decodeLines(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0][tt.field.Key])
		})
	}
}

func TestErrField(t *testing.T) {
	t.Parallel()
	cause := errors.New("cause")
	assert.Equal(t, Field{Key: "error", Value: cause}, Err(cause))
}

func TestZerologAdapter_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewZerologAdapter(zerolog.New(&buf))
	child := base.With(String("run_id", "abc-123"))
	child.Warn("slow run")
	base.Warn("no run id")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0]["run_id"])
	assert.NotContains(t, entries[1], "run_id")
}

func TestNewConsoleLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, zerolog.WarnLevel, true)
	logger.Info("hidden")
	logger.Warn("visible", Int("chunks", 10))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "chunks=10")
	assert.NotContains(t, out, "\x1b[", "no-color output must not carry ANSI codes")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in, zerolog.WarnLevel), "ParseLevel(%q)", tt.in)
	}
}
