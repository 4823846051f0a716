// Package outputchannel mirrors log lines into the editor's output channel for a session.
package outputchannel

import (
	"context"
	"io"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted in the logLevel setting.
const (
	LevelError = "ERROR"
	LevelWarn  = "WARN"
	LevelInfo  = "INFO"
	LevelDebug = "DEBUG"
	LevelTrace = "TRACE"
)

const _loggerSource = "Logger"

// Sink receives the lines written to the channel.
type Sink interface {
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
}

// Channel is a leveled logger whose output is mirrored to a Sink.
type Channel struct {
	level  zap.AtomicLevel
	logger *zap.Logger
}

// Option configures a Channel.
type Option func(*options)

type options struct {
	file io.Writer
}

// WithFile also writes every channel line to w.
func WithFile(w io.Writer) Option {
	return func(o *options) {
		o.file = w
	}
}

// New returns a Channel that writes to both base and sink. ctx routes sink calls to the session.
func New(ctx context.Context, base *zap.Logger, sink Sink, levelName string, opts ...Option) *Channel {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	level := zap.NewAtomicLevelAt(ParseLevel(levelName))
	cores := []zapcore.Core{newSinkCore(ctx, sink, level)}
	if o.file != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(lineEncoderConfig(false)), zapcore.AddSync(o.file), level))
	}

	return &Channel{
		level: level,
		logger: base.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(append([]zapcore.Core{c}, cores...)...)
		})),
	}
}

// ParseLevel maps a logLevel setting to a zap level. TRACE shares the debug level, unknown names fall back to INFO.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case LevelError:
		return zapcore.ErrorLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelDebug, LevelTrace:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger returns the untagged channel logger.
func (c *Channel) Logger() *zap.Logger {
	return c.logger
}

// Named returns a logger tagged with the given source.
func (c *Channel) Named(source string) *zap.Logger {
	return c.logger.Named(source)
}

// SetLevel applies a logLevel setting and reports the configured value.
func (c *Channel) SetLevel(name string) {
	c.level.SetLevel(ParseLevel(name))
	c.Named(_loggerSource).Sugar().Infof("Log level set to: %s", name)
}

type sinkCore struct {
	zapcore.LevelEnabler
	enc  zapcore.Encoder
	ctx  context.Context
	sink Sink
}

func newSinkCore(ctx context.Context, sink Sink, enab zapcore.LevelEnabler) *sinkCore {
	return &sinkCore{
		LevelEnabler: enab,
		enc:          zapcore.NewConsoleEncoder(lineEncoderConfig(true)),
		ctx:          ctx,
		sink:         sink,
	}
}

// lineEncoderConfig formats lines as "LEVEL\tSource\tmessage", prefixed by a timestamp when withTime is set.
func lineEncoderConfig(withTime bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if withTime {
		cfg.TimeKey = "T"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return cfg
}

func (s *sinkCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &sinkCore{
		LevelEnabler: s.LevelEnabler,
		enc:          s.enc.Clone(),
		ctx:          s.ctx,
		sink:         s.sink,
	}
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return clone
}

func (s *sinkCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if s.Enabled(ent.Level) {
		return ce.AddCore(ent, s)
	}
	return ce
}

func (s *sinkCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := s.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	line := strings.TrimSuffix(buf.String(), zapcore.DefaultLineEnding)
	buf.Free()

	if err := s.sink.LogMessage(s.ctx, &protocol.LogMessageParams{Type: messageType(ent.Level), Message: line}); err != nil {
		return err
	}
	if ent.Level >= zapcore.ErrorLevel {
		return s.sink.ShowMessage(s.ctx, &protocol.ShowMessageParams{Type: protocol.MessageTypeError, Message: ent.Message})
	}
	return nil
}

func (s *sinkCore) Sync() error {
	return nil
}

func messageType(l zapcore.Level) protocol.MessageType {
	switch {
	case l >= zapcore.ErrorLevel:
		return protocol.MessageTypeError
	case l == zapcore.WarnLevel:
		return protocol.MessageTypeWarning
	case l == zapcore.InfoLevel:
		return protocol.MessageTypeInfo
	default:
		return protocol.MessageTypeLog
	}
}
