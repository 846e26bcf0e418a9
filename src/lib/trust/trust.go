// Package trust is the leveled logger of the host tools. Levels are a mask,
// so a tool can show warnings and debug output without the info chatter.
package trust

import (
	"io"
	"log"
	"os"
)

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
	fatalMask MaskLevel = 0x80
)

// Default shows everything but debug output.
const Default = ErrorMask | WarnMask | InfoMask

var (
	level  = fatalMask | Default
	logger = log.New(os.Stderr, "", 0)
	exit   = os.Exit
)

// SetLevel sets the mask directly, ErrorMask|DebugMask shows exactly those
// two. It returns the previous mask.
func SetLevel(mask MaskLevel) MaskLevel {
	prev := level &^ fatalMask
	level = mask&(ErrorMask|WarnMask|InfoMask|DebugMask) | fatalMask
	return prev
}

func Level() MaskLevel {
	return level &^ fatalMask
}

// SetOutput sends log lines to w, each starting with prefix.
func SetOutput(w io.Writer, prefix string) {
	logger = log.New(w, prefix, 0)
}

func LevelToString() string {
	result := ""
	for _, l := range []struct {
		mask MaskLevel
		name string
	}{{ErrorMask, "error"}, {WarnMask, "warn"}, {InfoMask, "info"}, {DebugMask, "debug"}} {
		if level&l.mask == 0 {
			continue
		}
		if result != "" {
			result += " "
		}
		result += l.name
	}
	return result
}

func logf(l MaskLevel, format string, params ...interface{}) {
	if level&l == 0 {
		return
	}
	switch {
	case l&ErrorMask > 0:
		format = "ERROR: " + format
	case l&WarnMask > 0:
		format = " WARN: " + format
	case l&DebugMask > 0:
		format = "DEBUG: " + format
	}
	logger.Printf(format, params...)
}

//Fatalf prints the given log message and exits with exitCode. Fatalf is
//not maskable.
func Fatalf(exitCode int, format string, params ...interface{}) {
	logf(fatalMask, format, params...)
	exit(exitCode)
}

//Errorf prints the given log message using the ErrorMask level.
func Errorf(format string, params ...interface{}) {
	logf(ErrorMask, format, params...)
}

//Warnf prints the given log message using the WarnMask level.
func Warnf(format string, params ...interface{}) {
	logf(WarnMask, format, params...)
}

//Infof prints the given log message using the InfoMask level.
func Infof(format string, params ...interface{}) {
	logf(InfoMask, format, params...)
}

//Debugf prints the given log message using the DebugMask level.
func Debugf(format string, params ...interface{}) {
	logf(DebugMask, format, params...)
}
