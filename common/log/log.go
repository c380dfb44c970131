/*
 * Copyright 2018-present Open Networking Foundation

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 * http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package log

import (
	zp "go.uber.org/zap"
	zc "go.uber.org/zap/zapcore"
)

const (
	// DebugLevel logs a message at debug level
	DebugLevel = iota
	// InfoLevel logs a message at info level
	InfoLevel
	// WarnLevel logs a message at warning level
	WarnLevel
	// ErrorLevel logs a message at error level
	ErrorLevel
	// FatalLevel logs a message, then calls os.Exit(1).
	FatalLevel
)

// CONSOLE formats the log for the console, mostly used during development
const CONSOLE = "console"

// JSON formats the log using json format, mostly used by an automated logging system consumption
const JSON = "json"

// Logger represents an abstract logging interface.  Any logging implementation used
// will need to abide by this interface
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
	Debugw(string, Fields)

	Info(...interface{})
	Infof(string, ...interface{})
	Infow(string, Fields)

	Warn(...interface{})
	Warnf(string, ...interface{})
	Warnw(string, Fields)

	Error(...interface{})
	Errorf(string, ...interface{})
	Errorw(string, Fields)

	Fatal(...interface{})
	Fatalf(string, ...interface{})
	Fatalw(string, Fields)

	With(Fields) Logger
}

// Fields is used as key-value pairs for structural logging
type Fields map[string]interface{}

var defaultLogger *logger
var cfg zp.Config

type logger struct {
	log    *zp.SugaredLogger
	parent *zp.Logger
}

func parseLevel(l int) zp.AtomicLevel {
	switch l {
	case DebugLevel:
		return zp.NewAtomicLevelAt(zc.DebugLevel)
	case InfoLevel:
		return zp.NewAtomicLevelAt(zc.InfoLevel)
	case WarnLevel:
		return zp.NewAtomicLevelAt(zc.WarnLevel)
	case ErrorLevel:
		return zp.NewAtomicLevelAt(zc.ErrorLevel)
	case FatalLevel:
		return zp.NewAtomicLevelAt(zc.FatalLevel)
	}
	return zp.NewAtomicLevelAt(zc.ErrorLevel)
}

func getDefaultConfig(outputType string, level int, defaultFields Fields) zp.Config {
	return zp.Config{
		Level:            parseLevel(level),
		Encoding:         outputType,
		Development:      true,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    defaultFields,
		EncoderConfig: zc.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "msg",
			TimeKey:        "ts",
			StacktraceKey:  "stacktrace",
			LineEnding:     zc.DefaultLineEnding,
			EncodeLevel:    zc.LowercaseLevelEncoder,
			EncodeTime:     zc.ISO8601TimeEncoder,
			EncodeDuration: zc.SecondsDurationEncoder,
			EncodeCaller:   zc.ShortCallerEncoder,
		},
	}
}

// SetDefaultLogger needs to be invoked before the logger API can be invoked.  This function
// initialize the default logger (zap's sugaredlogger)
func SetDefaultLogger(outputType string, level int, defaultFields Fields) (Logger, error) {
	// Build a custom config using zap
	cfg = getDefaultConfig(outputType, level, defaultFields)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	defaultLogger = &logger{
		log:    l.Sugar(),
		parent: l,
	}

	return defaultLogger, nil
}

// SetLogLevel adjusts the level of the default logger at runtime
func SetLogLevel(level int) {
	cfg.Level.SetLevel(parseLevel(level).Level())
}

// CleanUp flushes any buffered log entries. Applications should take care to call
// CleanUp before exiting.
func CleanUp() error {
	if defaultLogger != nil && defaultLogger.parent != nil {
		if err := defaultLogger.parent.Sync(); err != nil {
			return err
		}
	}
	return nil
}

func getLogger() *logger {
	if defaultLogger == nil {
		// the logger api may be invoked before calling SetDefaultLogger
		_, _ = SetDefaultLogger(JSON, ErrorLevel, nil)
	}
	return defaultLogger
}

func serializeMap(fields Fields) []interface{} {
	data := make([]interface{}, len(fields)*2)
	i := 0
	for k, v := range fields {
		data[i] = k
		data[i+1] = v
		i = i + 2
	}
	return data
}

func (l logger) With(keysAndValues Fields) Logger {
	return logger{log: l.log.With(serializeMap(keysAndValues)...), parent: l.parent}
}

func (l logger) Debug(args ...interface{}) {
	l.log.Debug(args...)
}

func (l logger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Debugw logs a message with some additional context. The variadic key-value
// pairs are treated as they are in With.
func (l logger) Debugw(msg string, keysAndValues Fields) {
	l.log.Debugw(msg, serializeMap(keysAndValues)...)
}

func (l logger) Info(args ...interface{}) {
	l.log.Info(args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Infow logs a message with some additional context. The variadic key-value
// pairs are treated as they are in With.
func (l logger) Infow(msg string, keysAndValues Fields) {
	l.log.Infow(msg, serializeMap(keysAndValues)...)
}

func (l logger) Warn(args ...interface{}) {
	l.log.Warn(args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Warnw logs a message with some additional context. The variadic key-value
// pairs are treated as they are in With.
func (l logger) Warnw(msg string, keysAndValues Fields) {
	l.log.Warnw(msg, serializeMap(keysAndValues)...)
}

func (l logger) Error(args ...interface{}) {
	l.log.Error(args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Errorw logs a message with some additional context. The variadic key-value
// pairs are treated as they are in With.
func (l logger) Errorw(msg string, keysAndValues Fields) {
	l.log.Errorw(msg, serializeMap(keysAndValues)...)
}

func (l logger) Fatal(args ...interface{}) {
	l.log.Fatal(args...)
}

func (l logger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}

// Fatalw logs a message with some additional context. The variadic key-value
// pairs are treated as they are in With.
func (l logger) Fatalw(msg string, keysAndValues Fields) {
	l.log.Fatalw(msg, serializeMap(keysAndValues)...)
}

// With returns a logger initialized with the key-value pairs
func With(keysAndValues Fields) Logger {
	return getLogger().With(keysAndValues)
}

// Debug logs a message using the default logger
func Debug(args ...interface{}) {
	getLogger().Debug(args...)
}

// Debugf logs a formatted message using the default logger
func Debugf(format string, args ...interface{}) {
	getLogger().Debugf(format, args...)
}

// Debugw logs a message with fields using the default logger
func Debugw(msg string, keysAndValues Fields) {
	getLogger().Debugw(msg, keysAndValues)
}

// Info logs a message using the default logger
func Info(args ...interface{}) {
	getLogger().Info(args...)
}

// Infof logs a formatted message using the default logger
func Infof(format string, args ...interface{}) {
	getLogger().Infof(format, args...)
}

// Infow logs a message with fields using the default logger
func Infow(msg string, keysAndValues Fields) {
	getLogger().Infow(msg, keysAndValues)
}

// Warn logs a message using the default logger
func Warn(args ...interface{}) {
	getLogger().Warn(args...)
}

// Warnf logs a formatted message using the default logger
func Warnf(format string, args ...interface{}) {
	getLogger().Warnf(format, args...)
}

// Warnw logs a message with fields using the default logger
func Warnw(msg string, keysAndValues Fields) {
	getLogger().Warnw(msg, keysAndValues)
}

// Error logs a message using the default logger
func Error(args ...interface{}) {
	getLogger().Error(args...)
}

// Errorf logs a formatted message using the default logger
func Errorf(format string, args ...interface{}) {
	getLogger().Errorf(format, args...)
}

// Errorw logs a message with fields using the default logger
func Errorw(msg string, keysAndValues Fields) {
	getLogger().Errorw(msg, keysAndValues)
}

// Fatal logs a message using the default logger then calls os.Exit(1)
func Fatal(args ...interface{}) {
	getLogger().Fatal(args...)
}

// Fatalf logs a formatted message using the default logger then calls os.Exit(1)
func Fatalf(format string, args ...interface{}) {
	getLogger().Fatalf(format, args...)
}

// Fatalw logs a message with fields using the default logger then calls os.Exit(1)
func Fatalw(msg string, keysAndValues Fields) {
	getLogger().Fatalw(msg, keysAndValues)
}
