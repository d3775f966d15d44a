// Package logging builds the zap logger used across the application.
// The terminal belongs to the UI, so output goes to a file.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production JSON logger writing to path. An empty path logs
// to stderr, which is only sensible for the non-interactive subcommands.
func New(path, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if path != "" {
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// GooseLogger satisfies goose's Logger interface so migration output lands
// in the application log instead of stdout.
type GooseLogger struct {
	sugar *zap.SugaredLogger
}

func Goose(logger *zap.Logger) *GooseLogger {
	return &GooseLogger{sugar: logger.Named("goose").WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *GooseLogger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(strings.TrimSpace(format), v...)
}

// Fatalf logs at error level. goose calls it on unrecoverable states; exiting
// the process from inside the UI would leave the terminal in raw mode.
func (l *GooseLogger) Fatalf(format string, v ...interface{}) {
	l.sugar.Errorf(strings.TrimSpace(format), v...)
}
