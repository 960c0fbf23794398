// Package log provides file-backed loggers. Nothing is written to stdout so
// command output stays byte-for-byte stable, and no file is created until a
// logger actually writes.
package log

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

const logFileName = "launcher-icons.log"

var globalLogFile *lazyFile

// LogPath returns where the log file goes once something is logged.
func LogPath() string {
	return filepath.Join(os.TempDir(), logFileName)
}

// Initialize points the package loggers at the log file. The file is opened
// on the first write, so a run that logs nothing leaves no trace on disk.
func Initialize() {
	globalLogFile = &lazyFile{path: LogPath(), flag: os.O_CREATE | os.O_WRONLY | os.O_APPEND}

	const fmtFlags = log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(globalLogFile, "INFO:", fmtFlags)
	WarningLog = log.New(globalLogFile, "WARNING:", fmtFlags)
	ErrorLog = log.New(globalLogFile, "ERROR:", fmtFlags)

	InitDebug()
}

// Close closes the log file, if one was opened, and any debug log.
func Close() {
	CloseDebug()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
	}

	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
}

// lazyFile opens path on the first Write. If opening fails, every write is
// dropped.
type lazyFile struct {
	mu   sync.Mutex
	path string
	flag int
	f    *os.File
	err  error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil && l.err == nil {
		l.f, l.err = os.OpenFile(l.path, l.flag, 0644)
	}
	if l.err != nil {
		return len(p), nil
	}
	return l.f.Write(p)
}

func (l *lazyFile) opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f != nil
}

func (l *lazyFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
