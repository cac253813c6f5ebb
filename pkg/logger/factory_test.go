package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/fault"
	"github.com/dmitrymomot/ophite/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates text logger by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json formatter option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("debug option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithJSONFormatter(), logger.WithDebug(), logger.WithOutput(buf))
		log.Debug("details")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("includes default attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithJSONFormatter(),
			logger.WithAttr(slog.String("svc", "test")),
			logger.WithComponent("console"),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test", entry["svc"])
		assert.Equal(t, "console", entry["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithJSONFormatter(),
			logger.WithContextValue("id", ctxKey),
			logger.WithContextExtractors(nil),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "42", entry["id"])
	})

	t.Run("discard drops records", func(t *testing.T) {
		t.Parallel()
		log := logger.Discard()
		assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	})
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	require.ErrorIs(t, err, logger.ErrInvalidFormat)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	type key struct{}
	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, nil)

	assert.Same(t, base, logger.NewContextHandler(base, nil))

	h := logger.NewContextHandler(base, func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(key{}).(string)
		return slog.String("template", v), ok
	})
	log := slog.New(h).With("op", "match").WithGroup("regex")

	log.InfoContext(context.WithValue(context.Background(), key{}, "email"), "matched")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "match", entry["op"])
	assert.Equal(t, map[string]any{"template": "email"}, entry["regex"])
}
