// Package logging writes structured entries to a shared log file. The UI owns
// the terminal, so nothing here may touch stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "sysforge.log"

var (
	mu           sync.Mutex
	logger       = zap.NewNop()
	traceEnabled bool
)

// Configure builds the file-backed logger. Empty paths fall back to the
// default file; missing directories are created.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = defaultLogFile
		}
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	built, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	logger = built
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace records a structured event when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled {
		return
	}
	fields := make([]zap.Field, 0, len(payload))
	for key, value := range payload {
		fields = append(fields, zap.Any(key, value))
	}
	l.Debug(event, fields...)
}

// Error records an error unconditionally.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Error(err.Error())
}

// Sync flushes buffered entries. Called on every exit path.
func Sync() {
	mu.Lock()
	l := logger
	mu.Unlock()
	_ = l.Sync()
}
