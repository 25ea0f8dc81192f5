// Package log holds the leveled loggers used by loaders and the command line
// tool. The scoring packages never log.
package log

import (
	"io"
	"log"
	"os"
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

func init() {
	Init(io.Discard, os.Stdout, os.Stderr, os.Stderr)
}

// Init points each level at its writer.
func Init(
	traceHandle io.Writer,
	infoHandle io.Writer,
	warningHandle io.Writer,
	errorHandle io.Writer) {

	Trace = log.New(traceHandle,
		"TRACE: ",
		log.Ldate|log.Ltime|log.Lshortfile)

	Info = log.New(infoHandle,
		"INFO: ",
		log.Ldate|log.Ltime)

	Warning = log.New(warningHandle,
		"WARNING: ",
		log.Ldate|log.Ltime)

	Error = log.New(errorHandle,
		"ERROR: ",
		log.Ldate|log.Ltime|log.Lshortfile)
}

// InitLog enables tracing when TRACEGRADE_TRACE=1. Info goes to stderr so
// stdout stays clean for JSON output.
func InitLog() {
	trace := io.Discard
	if os.Getenv("TRACEGRADE_TRACE") == "1" {
		trace = os.Stderr
	}
	Init(trace, os.Stderr, os.Stderr, os.Stderr)
}
