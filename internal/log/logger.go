// Package log provides the file-backed structured logger for the app.
//
// The TUI owns the terminal, so nothing is ever written to stdout or
// stderr. Log output goes to a rotated file under the configured log
// directory instead. Until Init is called the package logs nowhere, which
// keeps tests quiet.
package log

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the package-wide logger. It is a no-op until Init runs.
var Logger = zap.NewNop()

const logFileName = "biblioteca.log"

// Init points the package logger at a rotated file inside dir.
func Init(dir string) {
	rotation := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	Logger = newZap(rotation)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// Sync flushes buffered entries. Called once on shutdown.
func Sync() {
	_ = Logger.Sync()
}

func newZap(rotation *lumberjack.Logger) *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(config)
	writer := zapcore.AddSync(rotation)
	core := zapcore.NewCore(encoder, writer, zapcore.DebugLevel)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}
