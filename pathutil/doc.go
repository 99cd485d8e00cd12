// Package pathutil provides helpers for working with PATH-style directory lists.
//
// It covers the string-level parts of a PATH search: splitting a list value
// into directories, expanding an extension-less name with PATHEXT-style
// extensions, normalizing directory names, and checking whether a directory
// is already part of a list.
//
// # Directory Lists
//
// SplitList drops empty and whitespace-only entries, which appear when a
// value has repeated or trailing separators:
//
//	dirs := pathutil.SplitList(`C:\A;;C:\B;`, ";")
//	// dirs == []string{`C:\A`, `C:\B`}
//
// # Extension Expansion
//
// A name with no '.', '*' or '?' is expanded with every extension from the
// extension list, lower-cased:
//
//	if !pathutil.HasExtensionMarker("test") {
//	    candidates := pathutil.ExpandExtensions("test", []string{".EXE", ".BAT"})
//	    // candidates == []string{"test.exe", "test.bat"}
//	}
//
// # Directory Comparison
//
// ContainsDir compares case-insensitively and ignores a single trailing
// separator on either side, so `C:\Tools` and `c:\tools\` are the same entry.
package pathutil
