// Package log wraps the standard logger so every package logs the same way.
package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var rotator *lumberjack.Logger

// SetOutput redirects log output. Mostly useful in tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// ToFile sends log output to a size-rotated file. An empty path keeps
// logging on stderr.
func ToFile(path string) {
	if path == "" {
		return
	}
	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(rotator)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// Close flushes and closes the rotating file, if any, and restores stderr.
func Close() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	log.SetOutput(os.Stderr)
	return err
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal calls the standard log.Fatal()
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	Close()
	os.Exit(1)
}

// Fatalf calls the standard log.Fatalf()
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	Close()
	os.Exit(1)
}
