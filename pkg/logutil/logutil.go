// Package logutil provides logging utilities.
//
// All loggers obtained with GetLogger share one output, which discards
// everything until SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"log"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	out     = io.Discard
	closer  io.Closer
	loggers []*log.Logger
	lock    sync.Mutex
)

// Rotation configures how a log file set with SetOutputFile is rotated.
type Rotation struct {
	// Maximum size of a log file in megabytes before it is rotated.
	MaxSizeMB int
	// Maximum number of rotated files to keep.
	MaxBackups int
}

// DefaultRotation is used when SetOutputFile is passed a zero Rotation.
var DefaultRotation = Rotation{MaxSizeMB: 10, MaxBackups: 3}

// GetLogger gets a logger with a prefix.
func GetLogger(prefix string) *log.Logger {
	lock.Lock()
	defer lock.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile, it
// is closed.
func SetOutput(newout io.Writer) error {
	lock.Lock()
	defer lock.Unlock()
	return setOutput(newout, nil)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// a rotating log file. If fname is empty, output is discarded.
func SetOutputFile(fname string, r Rotation) error {
	lock.Lock()
	defer lock.Unlock()
	if fname == "" {
		return setOutput(io.Discard, nil)
	}
	if r == (Rotation{}) {
		r = DefaultRotation
	}
	file := &lumberjack.Logger{
		Filename:   fname,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
	}
	return setOutput(file, file)
}

// Close closes the log file opened by SetOutputFile, if any, and discards
// further output.
func Close() error {
	return SetOutput(io.Discard)
}

func setOutput(newout io.Writer, newcloser io.Closer) error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out, closer = newout, newcloser
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return err
}
