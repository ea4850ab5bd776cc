package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger shared by the service, backed by zap.
// - Debug/Info/Warn/Error/Fatal variants and Init(level)
// - L() exposes the underlying *zap.Logger for gin request logging

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = newLogger(zapcore.Lock(os.Stdout))
)

func newLogger(w zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, level)
	return zap.New(core)
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		level.SetLevel(zapcore.FatalLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debugf(format string, v ...interface{}) { L().Debug(fmt.Sprintf(format, v...)) }
func Infof(format string, v ...interface{})  { L().Info(fmt.Sprintf(format, v...)) }
func Warnf(format string, v ...interface{})  { L().Warn(fmt.Sprintf(format, v...)) }
func Errorf(format string, v ...interface{}) { L().Error(fmt.Sprintf(format, v...)) }

// Fatalf logs and exits the process with status 1.
func Fatalf(format string, v ...interface{}) { L().Fatal(fmt.Sprintf(format, v...)) }

func Debug(v string) { L().Debug(v) }
func Info(v string)  { L().Info(v) }
func Warn(v string)  { L().Warn(v) }
func Error(v string) { L().Error(v) }

// Sync flushes buffered entries; call before exit.
func Sync() { _ = L().Sync() }

// LevelString returns the current level as text.
func LevelString() string {
	switch level.Level() {
	case zapcore.DebugLevel:
		return "debug"
	case zapcore.WarnLevel:
		return "warn"
	case zapcore.ErrorLevel:
		return "error"
	case zapcore.FatalLevel:
		return "fatal"
	}
	return "info"
}
