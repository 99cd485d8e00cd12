// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides diagnostic logging for pathfind, built on slog.
//
// Search results go to stdout through the report package; logutil output goes
// to stderr and is meant for troubleshooting (which directories were skipped,
// which patterns were tried).
//
// # Setup
//
//	logutil.SetupLoggerWithWriter(os.Stderr, debug || logutil.DebugFromEnv())
//
// Debug logging is enabled with --debug or by setting PATHFIND_DEBUG=true.
//
// # Component Loggers
//
//	log := logutil.NewLogger("finder").WithOperation("find")
//	log.Debug("search path resolved", "dirs", len(dirs))
//
// A component logger captures the global logger when it is created, so set
// up logging before constructing the components that use it.
package logutil
