// Package util carries the debug logging shared by the server modes.
package util

import (
	"log"
	"os"
)

// LoggingEnabled gates LogF. It is off by default because the stdio language
// server transport cannot tolerate stray output on stdout.
var LoggingEnabled = false

var debugLogger = log.New(os.Stderr, "", log.LstdFlags)

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	debugLogger.Printf(format, args...)
}
