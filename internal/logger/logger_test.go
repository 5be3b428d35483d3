/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"bennypowers.dev/figtokens/internal/logger"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	logger.Warn("skipping %s", "node")
	logger.Info("Wrote %s", "a.json")
	logger.Debug("hidden")

	logger.SetVerbose(true)
	logger.Debug("shown %d", 1)

	want := "warning: skipping node\nWrote a.json\ndebug: shown 1\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLogger_Discard(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	logger.Warn("nothing to see")
	if logger.Verbose() {
		t.Error("Verbose() = true, want false by default")
	}
}
