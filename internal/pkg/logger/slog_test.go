package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	logRequest := func(ctx context.Context, level slog.Level, wantKeys []string, unwantedKeys []string) func(t *testing.T) {
		return func(t *testing.T) {
			var buf bytes.Buffer
			log := NewStructuredLogger(&buf, slog.LevelInfo)

			log.Log(ctx, level, "booking transition")

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

			for _, key := range wantKeys {
				assert.Contains(t, record, key)
			}
			for _, key := range unwantedKeys {
				assert.NotContains(t, record, key)
			}
		}
	}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = WithSessionID(ctx, "session-1")

	t.Run("info_with_ids", logRequest(ctx, slog.LevelInfo,
		[]string{"request_id", "session_id"}, []string{"stack_trace"}))
	t.Run("error_with_stack_trace", logRequest(context.Background(), slog.LevelError,
		[]string{"stack_trace"}, []string{"request_id", "session_id"}))
}

func TestStructuredLogger_DebugFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := NewStructuredLogger(&buf, slog.LevelInfo)

	log.Debug("hidden")

	assert.Empty(t, buf.String())
}
