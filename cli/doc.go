// Package cli implements the pathfind command line on top of cobra.
//
// The root command takes a single file name, searches the directories of the
// search path variable for it, and reports what it found. The exit code is
// the finder.Status of the run.
package cli
