// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "PATHFIND_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
)

func init() {
	SetupLogger(false)
}

// SetupLogger configures the global logger to write text to stderr.
// debug enables debug-level output.
func SetupLogger(debug bool) {
	SetupLoggerWithWriter(os.Stderr, debug)
}

// SetupLoggerWithWriter configures the global logger with a custom writer.
// Loggers created by NewLogger afterwards write to w.
func SetupLoggerWithWriter(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	mu.Lock()
	defer mu.Unlock()

	globalLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(globalLogger)
}

// DebugFromEnv reports whether PATHFIND_DEBUG requests debug logging.
func DebugFromEnv() bool {
	return strings.EqualFold(os.Getenv(EnvDebug), "true")
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
