// Package logger holds the process-wide file logger. The TUI owns the
// terminal, so log output always goes to a file under the fincal home
// directory rather than stderr.
package logger

import (
	"os"
	"path/filepath"

	"github.com/phuslu/log"
)

var defaultLogger = log.Logger{
	Level:      log.InfoLevel,
	TimeFormat: "2006-01-02 15:04:05",
	Writer:     log.IOWriter{Writer: os.Stderr},
}

// Init points the logger at <dir>/fincal.log, creating the directory when
// needed. An empty dir resolves to ~/.fincal.
func Init(dir string) error {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".fincal")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	defaultLogger.Writer = &log.FileWriter{
		Filename: filepath.Join(dir, "fincal.log"),
		MaxSize:  10 << 20,
	}
	return nil
}

// SetVerbose lowers the level to debug.
func SetVerbose(verbose bool) {
	if verbose {
		defaultLogger.Level = log.DebugLevel
	} else {
		defaultLogger.Level = log.InfoLevel
	}
}

// Debug starts a debug entry.
func Debug() *log.Entry { return defaultLogger.Debug() }

// Info starts an info entry.
func Info() *log.Entry { return defaultLogger.Info() }

// Warn starts a warn entry.
func Warn() *log.Entry { return defaultLogger.Warn() }

// Error starts an error entry.
func Error() *log.Entry { return defaultLogger.Error() }
