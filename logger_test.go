package kmeans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.New()

	l := newBufferLogger(&buf).WithEngine(id).WithK(3).WithDimension(2)
	l.Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, id.String(), lines[0]["engine"])
	assert.Equal(t, float64(3), lines[0]["k"])
	assert.Equal(t, float64(2), lines[0]["dimension"])
}

func TestLogger_LogStep(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogStep(context.Background(), 2, true, []int{1, 3})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "step completed", lines[0]["msg"])
	assert.Equal(t, float64(2), lines[0]["step"])
	assert.Equal(t, true, lines[0]["converged"])
}

func TestLogger_LogRun(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		stats RunStats
		err   error
		level string
		msg   string
	}{
		{"Converged", RunStats{Steps: 4, Converged: true}, nil, "INFO", "run converged"},
		{"Exhausted", RunStats{Steps: 10}, nil, "INFO", "run exhausted step budget"},
		{"Failed", RunStats{Steps: 1}, errors.New("boom"), "ERROR", "run failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newBufferLogger(&buf).LogRun(ctx, tt.stats, tt.err)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.level, lines[0]["level"])
			assert.Equal(t, tt.msg, lines[0]["msg"])
			assert.Equal(t, float64(tt.stats.Steps), lines[0]["steps"])
		})
	}
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestNewLogger_DefaultHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))

	assert.True(t, NewTextLogger(slog.LevelDebug).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, NewJSONLogger(slog.LevelWarn).Enabled(context.Background(), slog.LevelInfo))
}
