package log

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// DebugEnv enables debug logging when set to "1".
const DebugEnv = "LAUNCHER_ICONS_DEBUG"

const debugLogFileName = "launcher-icons-debug.log"

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *lazyFile
)

// DebugLogPath returns where debug output goes when DebugEnv is set.
func DebugLogPath() string {
	return filepath.Join(os.TempDir(), debugLogFileName)
}

// InitDebug enables debug logging when DebugEnv=1. Otherwise DebugLog is a
// no-op logger so callers never see nil.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	debugLogFile = &lazyFile{path: DebugLogPath(), flag: os.O_CREATE | os.O_WRONLY | os.O_TRUNC}
	DebugLog = log.New(debugLogFile, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
}

// CloseDebug closes the debug log file and turns debug mode off.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
	}
	DebugEnabled = false
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}
