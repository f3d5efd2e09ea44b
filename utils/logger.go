package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel enumerates severity tiers.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l LogLevel) String() string {
	if int(l) >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel maps a config string ("debug", "warn", ...) to a LogLevel.
// Unknown or empty strings give INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Logger is a levelled logger shared by the resolver and the CLI.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	inner *log.Logger
	file  *os.File
}

var (
	globalLogger *Logger
	logOnce      sync.Once
)

// InitLogger creates the singleton logger. Call once at startup.
func InitLogger(minLevel LogLevel, logFilePath string) *Logger {
	logOnce.Do(func() {
		var writers []io.Writer
		writers = append(writers, os.Stdout)

		var f *os.File
		if logFilePath != "" {
			var err error
			f, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				writers = append(writers, f)
			} else {
				log.Printf("[WARN] could not open log file %s: %v\n", logFilePath, err)
			}
		}

		globalLogger = NewLogger(minLevel, io.MultiWriter(writers...))
		globalLogger.file = f
	})
	return globalLogger
}

// NewLogger returns a logger writing to w. It does not touch the singleton.
func NewLogger(minLevel LogLevel, w io.Writer) *Logger {
	return &Logger{
		level: minLevel,
		inner: log.New(w, "", 0),
	}
}

// L returns the global logger, initialising a stdout-only one at INFO if
// InitLogger has not been called.
func L() *Logger {
	if globalLogger == nil {
		return InitLogger(INFO, "")
	}
	return globalLogger
}

// SetLevel changes the minimum level logged.
func (l *Logger) SetLevel(lvl LogLevel) {
	l.mu.Lock()
	l.level = lvl
	l.mu.Unlock()
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
}

func (l *Logger) log(lvl LogLevel, format string, args ...any) {
	l.mu.Lock()
	if lvl < l.level {
		l.mu.Unlock()
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	l.inner.Printf("[%s] %s  %s", lvl, ts, msg)
	l.mu.Unlock()

	if lvl == FATAL {
		l.Close()
		os.Exit(1)
	}
}

func (l *Logger) Debug(f string, a ...any) { l.log(DEBUG, f, a...) }
func (l *Logger) Info(f string, a ...any)  { l.log(INFO, f, a...) }
func (l *Logger) Warn(f string, a ...any)  { l.log(WARN, f, a...) }
func (l *Logger) Error(f string, a ...any) { l.log(ERROR, f, a...) }
func (l *Logger) Fatal(f string, a ...any) { l.log(FATAL, f, a...) }
