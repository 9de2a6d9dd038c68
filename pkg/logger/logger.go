package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger used across the service, backed by zap.
// Init(level) configures the global instance; the Debugf/Infof/... helpers
// keep call sites short. LOG_LEVEL values: debug|info|warn|error|fatal.

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	level zapcore.Level = zapcore.InfoLevel
)

func init() {
	sugar = build(zapcore.InfoLevel, "")
}

func build(lvl zapcore.Level, environment string) *zap.SugaredLogger {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap only fails on malformed config; fall back to a no-op logger
		l = zap.NewNop()
	}
	return l.Sugar()
}

// Init sets the global log level and rebuilds the logger. Unknown or empty
// level strings fall back to info. Call early during startup.
func Init(l string) {
	InitWithEnvironment(l, "")
}

// InitWithEnvironment is Init plus an environment hint: "production" selects
// JSON output, anything else the human-readable development encoder.
func InitWithEnvironment(l, environment string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "fatal":
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}
	sugar = build(level, environment)
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { get().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { get().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }

// Fatalf logs and exits the process.
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string.
func Debug(v string) { get().Debug(v) }
func Info(v string)  { get().Info(v) }
func Warn(v string)  { get().Warn(v) }
func Error(v string) { get().Error(v) }

// Sync flushes buffered log entries. Safe to call on shutdown.
func Sync() { _ = get().Sync() }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
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
