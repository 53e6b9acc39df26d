package ctxutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")

	assert.Equal(t, "req-42", RequestIDFromCtx(ctx))
	assert.Empty(t, RequestIDFromCtx(context.Background()))
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

func TestLogHandler_AddsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil)))

	logger.InfoContext(WithRequestID(context.Background(), "req-7"), "with id")
	logger.InfoContext(context.Background(), "without id")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "req-7", lines[0]["request_id"])
	assert.NotContains(t, lines[1], "request_id")
}

func TestLogHandler_ExplicitRequestIDNotDuplicated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil)))

	logger.InfoContext(WithRequestID(context.Background(), "req-9"), "explicit", "request_id", "req-9")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"request_id"`)))
}

func TestLogHandler_SurvivesWithAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(slog.NewJSONHandler(&buf, nil))).
		With("service", "lookup").
		WithGroup("g")

	logger.InfoContext(WithRequestID(context.Background(), "req-8"), "grouped", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "lookup", lines[0]["service"])
	assert.Equal(t, map[string]any{"k": "v", "request_id": "req-8"}, lines[0]["g"])
}
