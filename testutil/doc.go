// Package testutil provides common testing utilities for pathfind.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Building directory trees of empty files for search tests (WriteFiles, MakeDirs)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestSearch(t *testing.T) {
//	    dirs := testutil.MakeDirs(t, 2)
//	    testutil.WriteFiles(t, dirs[0], "tool.exe", "tool.bat")
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runSearch(dirs)
//	    })
//	}
package testutil
