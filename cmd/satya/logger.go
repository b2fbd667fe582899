// cmd/satya/logger.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
)

var logLevelStrings = map[LogLevel]string{
	LogDebug:   "DEBUG",
	LogInfo:    "INFO",
	LogWarning: "WARN",
	LogError:   "ERROR",
}

// ParseLogLevel converts a config string to a LogLevel
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarning
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// AppLogger handles application logging
type AppLogger struct {
	logger    *log.Logger
	file      *os.File
	level     LogLevel
	filename  string
	maxSize   int64
	mutex     sync.Mutex
	startTime time.Time
}

var (
	loggerInstance *AppLogger
	loggerMu       sync.Mutex
)

// InitLogger initializes the global logger instance
func InitLogger(logPath string, level LogLevel) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	l, err := newLogger(logPath, level)
	if err != nil {
		return err
	}
	loggerInstance = l
	return nil
}

// Logger returns the global logger instance. Before InitLogger runs
// (and in tests) it falls back to a stderr-only logger.
func Logger() *AppLogger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if loggerInstance == nil {
		loggerInstance = &AppLogger{
			logger:    log.New(os.Stderr, "", log.LstdFlags),
			level:     LogInfo,
			startTime: time.Now(),
		}
	}
	return loggerInstance
}

// newLogger creates a new logger instance
func newLogger(logPath string, level LogLevel) (*AppLogger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	// Write to both file and stdout
	multiWriter := io.MultiWriter(file, os.Stdout)

	l := &AppLogger{
		logger:    log.New(multiWriter, "", log.LstdFlags),
		file:      file,
		level:     level,
		filename:  logPath,
		maxSize:   50 * 1024 * 1024, // 50MB
		startTime: time.Now(),
	}

	l.Info("Logger initialized")
	return l, nil
}

// log formats and writes a log message
func (l *AppLogger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if err := l.rotateIfNeeded(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
	}

	msg := fmt.Sprintf("[%s] %s", logLevelStrings[level], fmt.Sprintf(format, args...))
	l.logger.Print(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

// Info logs an info message
func (l *AppLogger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

// Warning logs a warning message
func (l *AppLogger) Warning(format string, args ...interface{}) {
	l.log(LogWarning, format, args...)
}

// Error logs an error message
func (l *AppLogger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// rotateIfNeeded checks if log rotation is needed and performs it
func (l *AppLogger) rotateIfNeeded() error {
	if l.file == nil {
		return nil
	}

	info, err := l.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat log file: %v", err)
	}

	if info.Size() < l.maxSize {
		return nil
	}

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %v", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	rotatedPath := fmt.Sprintf("%s.%s", l.filename, timestamp)

	if err := os.Rename(l.filename, rotatedPath); err != nil {
		return fmt.Errorf("failed to rename log file: %v", err)
	}

	file, err := os.OpenFile(l.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %v", err)
	}

	multiWriter := io.MultiWriter(file, os.Stdout)
	l.logger.SetOutput(multiWriter)
	l.file = file

	return nil
}

// SetLevel changes the logging level
func (l *AppLogger) SetLevel(level LogLevel) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Close closes the logger and underlying file
func (l *AppLogger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %v", err)
	}
	return nil
}
