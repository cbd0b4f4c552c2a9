package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	logger  *log.Logger
	logFile *os.File
)

// Open starts logging to a timestamped file under dir. The TUI owns the
// terminal, so log output never goes to stdout. If the file cannot be
// created, logging falls back to stderr.
func Open(dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger = log.New(os.Stderr, "[cli] ", log.LstdFlags|log.Lshortfile)
		return
	}

	logFileName := filepath.Join(dir, fmt.Sprintf("cli-%s.log", time.Now().Format("20060102-150405")))

	var err error
	logFile, err = os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger = log.New(os.Stderr, "[cli] ", log.LstdFlags|log.Lshortfile)
		return
	}

	logger = log.New(logFile, "[cli] ", log.LstdFlags|log.Lshortfile)
}

// Writer returns the destination of the log, for redirecting the
// standard logger while the TUI is active.
func Writer() *os.File {
	if logFile != nil {
		return logFile
	}
	return os.Stderr
}

// Log writes a log message
func Log(format string, v ...interface{}) {
	if logger != nil {
		logger.Printf(format, v...)
	}
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	if logger != nil {
		msg := fmt.Sprintf(format, v...)
		logger.Printf("ERROR: %s: %v", msg, err)
	}
}

// CloseLog closes the log file
func CloseLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
