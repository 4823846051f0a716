package outputchannel

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu    sync.Mutex
	lines []*protocol.LogMessageParams
	shown []*protocol.ShowMessageParams
}

func (r *recordingSink) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, params)
	return nil
}

func (r *recordingSink) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, params)
	return nil
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"ERROR", zapcore.ErrorLevel},
		{"WARN", zapcore.WarnLevel},
		{"INFO", zapcore.InfoLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"TRACE", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"VERBOSE", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.name))
		})
	}
}

func TestChannel(t *testing.T) {
	t.Run("mirrors enabled lines", func(t *testing.T) {
		sink := &recordingSink{}
		c := New(context.Background(), zap.NewNop(), sink, LevelInfo)

		c.Named("CoreIntegration").Info("Core extension active")
		c.Named("CoreIntegration").Debug("hidden")

		require.Len(t, sink.lines, 1)
		assert.Equal(t, protocol.MessageTypeInfo, sink.lines[0].Type)
		assert.Contains(t, sink.lines[0].Message, "INFO")
		assert.Contains(t, sink.lines[0].Message, "CoreIntegration")
		assert.Contains(t, sink.lines[0].Message, "Core extension active")
		assert.NotContains(t, sink.lines[0].Message, "\n")
		assert.Empty(t, sink.shown)
	})

	t.Run("warnings", func(t *testing.T) {
		sink := &recordingSink{}
		c := New(context.Background(), zap.NewNop(), sink, LevelWarn)

		c.Named("CoreIntegration").Info("hidden")
		c.Named("CoreIntegration").Warn("WinCC OA Core extension not found - automatic mode unavailable")

		require.Len(t, sink.lines, 1)
		assert.Equal(t, protocol.MessageTypeWarning, sink.lines[0].Type)
	})

	t.Run("errors are shown", func(t *testing.T) {
		sink := &recordingSink{}
		c := New(context.Background(), zap.NewNop(), sink, LevelError)

		c.Named("Extension").Error("failed")

		require.Len(t, sink.lines, 1)
		assert.Equal(t, protocol.MessageTypeError, sink.lines[0].Type)
		require.Len(t, sink.shown, 1)
		assert.Equal(t, "failed", sink.shown[0].Message)
	})

	t.Run("fields are kept", func(t *testing.T) {
		sink := &recordingSink{}
		c := New(context.Background(), zap.NewNop(), sink, LevelDebug)

		c.Named("Extension").With(zap.String("session", "abc")).Debug("VS Code Version: 1.90.0")

		require.Len(t, sink.lines, 1)
		assert.Equal(t, protocol.MessageTypeLog, sink.lines[0].Type)
		assert.Contains(t, sink.lines[0].Message, `"session": "abc"`)
	})

	t.Run("base logger still receives lines", func(t *testing.T) {
		sink := &recordingSink{}
		core, logs := observer.New(zapcore.DebugLevel)
		c := New(context.Background(), zap.New(core), sink, LevelError)

		c.Named("Extension").Info("activated")

		assert.Empty(t, sink.lines)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "Extension", logs.All()[0].LoggerName)
	})
}

func TestSetLevel(t *testing.T) {
	t.Run("lower threshold", func(t *testing.T) {
		sink := &recordingSink{}
		c := New(context.Background(), zap.NewNop(), sink, LevelInfo)

		c.SetLevel(LevelTrace)

		require.Len(t, sink.lines, 1)
		assert.Contains(t, sink.lines[0].Message, "Logger")
		assert.Contains(t, sink.lines[0].Message, "Log level set to: TRACE")

		c.Named("Extension").Debug("now visible")
		assert.Len(t, sink.lines, 2)
	})

	t.Run("raised threshold hides its own report", func(t *testing.T) {
		sink := &recordingSink{}
		core, logs := observer.New(zapcore.DebugLevel)
		c := New(context.Background(), zap.New(core), sink, LevelInfo)

		c.SetLevel(LevelError)

		assert.Empty(t, sink.lines)
		assert.Equal(t, 1, logs.FilterMessage("Log level set to: ERROR").Len())

		c.Named("Extension").Warn("hidden")
		assert.Empty(t, sink.lines)
		c.Named("Extension").Error("shown")
		assert.Len(t, sink.lines, 1)
	})

	t.Run("unknown names fall back to INFO", func(t *testing.T) {
		sink := &recordingSink{}
		c := New(context.Background(), zap.NewNop(), sink, LevelError)
		c.SetLevel("LOUD")

		require.Len(t, sink.lines, 1)
		assert.Contains(t, sink.lines[0].Message, "Log level set to: LOUD")
		c.Named("Extension").Debug("hidden")
		assert.Len(t, sink.lines, 1)
	})
}

func TestWithFile(t *testing.T) {
	var buf bytes.Buffer
	sink := &recordingSink{}
	c := New(context.Background(), zap.NewNop(), sink, LevelWarn, WithFile(&buf))

	c.Named("CoreIntegration").Warn("Core extension not found")
	c.Named("CoreIntegration").Info("filtered")

	assert.Equal(t, "WARN\tCoreIntegration\tCore extension not found\n", buf.String())
	require.Len(t, sink.lines, 1)
	assert.Contains(t, sink.lines[0].Message, "Core extension not found")
}
