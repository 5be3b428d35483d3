/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the package-level logger used for warnings about
// skipped nodes and progress output. It writes to stderr so generated
// documents can be piped from stdout.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

var (
	mu      sync.RWMutex
	logger  = log.New(os.Stderr, "", 0)
	verbose atomic.Bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// SetVerbose enables or disables debug messages.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Verbose reports whether debug messages are enabled.
func Verbose() bool {
	return verbose.Load()
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	printf(format, args...)
}

// Debug logs a debug message when verbose output is enabled.
func Debug(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	printf("debug: "+format, args...)
}

func printf(format string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Printf(format, args...)
}
