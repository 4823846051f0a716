// Package logfilewriter keeps a human readable copy of the extension output on disk.
package logfilewriter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/fs"
	"github.com/winccoa/extension-bridge/src/bridge/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_fmtOutputKey = "output:%s"
	_outputDir    = "winccoa-extension-bridge"
)

// Module provides the extension output file into an Fx application.
var Module = fx.Provide(New)

// OutputWriter receives the formatted lines of the extension output channel.
type OutputWriter interface {
	io.Writer
}

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	fx.In

	FS             fs.BridgeFS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// New creates the output file for the extension served by this daemon.
func New(p Params) (OutputWriter, error) {
	return SetupOutputWriter(p, entity.ExtensionID)
}

// SetupOutputWriter creates a writer backed by a temporary file that the user can open in place of the editor's output channel.
// The file path is stored in the server info file for reference by the host shim.
func SetupOutputWriter(p Params, name string) (OutputWriter, error) {
	logsDirPath := filepath.Join(os.TempDir(), _outputDir)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	logFile, err := p.FS.TempFile(logsDirPath, name+"-*.log")
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}

	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, name), logFile.Name()); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("outputting file path to info file: %w", err)
	}

	// Lines arrive already carrying level and source, so only a timestamp is added here.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:    "T",
			MessageKey: "M",
			LineEnding: zapcore.DefaultLineEnding,
			EncodeTime: zapcore.ISO8601TimeEncoder,
		}),
		zapcore.Lock(logFile),
		zap.DebugLevel,
	)
	fileLogger := zap.New(core).Sugar()

	// Cleanup on shutdown.
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			fileLogger.Sync()
			logFile.Close()
			return p.FS.Remove(logFile.Name())
		},
	})

	return &loggerWriter{logger: fileLogger}, nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	// Incoming data may contain multiple lines, including blank ones.
	for _, line := range strings.Split(string(p), "\n") {
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}

	return len(p), nil
}
