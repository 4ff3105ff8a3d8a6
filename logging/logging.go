// Package logging routes the standard logger to a per-binary file under logs/
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	Dir     = "logs"
	MaxSize = 10 * 1024 * 1024
)

// FileName is the active log file for a binary
func FileName(name string) string {
	return name + ".log"
}

// Setup sends log output to logs/<name>.log when debug is set, io.Discard otherwise
// A file past MaxSize is moved aside to a timestamped name first
// Returns the open file, or nil when logging is discarded
func Setup(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(Dir, FileName(name))
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(Dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
