// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"strings"
)

// DefaultListSeparator is the separator between entries of PATH on this platform.
const DefaultListSeparator = string(os.PathListSeparator)

// DefaultExtensionSeparator separates PATHEXT entries on every platform.
const DefaultExtensionSeparator = ";"

// extensionMarkers are the characters that turn off PATHEXT expansion.
const extensionMarkers = ".*?"

// SplitList splits a PATH-style value into its directories.
// Empty and whitespace-only entries are skipped. Other entries are returned unchanged.
func SplitList(value, sep string) []string {
	if sep == "" {
		sep = DefaultListSeparator
	}

	var dirs []string
	for _, entry := range strings.Split(value, sep) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		dirs = append(dirs, entry)
	}
	return dirs
}

// SplitExtensions splits an extension list value on sep, or on
// DefaultExtensionSeparator when sep is empty.
// Empty entries are kept: an empty extension stands for the bare name.
func SplitExtensions(value, sep string) []string {
	if value == "" {
		return nil
	}
	if sep == "" {
		sep = DefaultExtensionSeparator
	}
	return strings.Split(value, sep)
}

// HasExtensionMarker reports whether name contains a '.', '*' or '?'.
// Such names are searched as given, without extension expansion.
func HasExtensionMarker(name string) bool {
	return strings.ContainsAny(name, extensionMarkers)
}

// ExpandExtensions returns one search pattern per extension: the name followed
// by the lower-cased extension, taken verbatim otherwise (" .BAT" gives
// "name .bat"). Duplicates keep their first position.
// It returns nil when exts is empty.
func ExpandExtensions(name string, exts []string) []string {
	if len(exts) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(exts))
	candidates := make([]string, 0, len(exts))
	for _, ext := range exts {
		candidate := name + strings.ToLower(ext)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
	}
	return candidates
}

// WithTrailingSeparator returns dir ending in a path separator.
func WithTrailingSeparator(dir string) string {
	if dir == "" || hasTrailingSeparator(dir) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

// JoinFile returns the full name of file as though it were in dir.
func JoinFile(dir, file string) string {
	return WithTrailingSeparator(dir) + file
}

// ContainsDir reports whether dir appears in dirs. The comparison is
// case-insensitive and ignores one trailing separator on either side.
func ContainsDir(dirs []string, dir string) bool {
	want := trimTrailingSeparator(dir)
	for _, d := range dirs {
		if strings.EqualFold(trimTrailingSeparator(d), want) {
			return true
		}
	}
	return false
}

func hasTrailingSeparator(dir string) bool {
	return dir != "" && os.IsPathSeparator(dir[len(dir)-1])
}

func trimTrailingSeparator(dir string) string {
	// A bare root ("/") keeps its separator.
	if len(dir) > 1 && hasTrailingSeparator(dir) {
		return dir[:len(dir)-1]
	}
	return dir
}
