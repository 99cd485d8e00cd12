// Package search finds files matching a name pattern in a list of directories.
//
// A pattern is a file name in which '*' matches any run of characters and '?'
// matches exactly one; every other character is literal. Each directory is
// listed once and its entries are matched against the pattern, so the result
// reflects what is actually on disk, including the on-disk case of each name.
//
// Missing or unreadable directories are not errors: they contribute no matches
// and are reported through debug logging only.
//
// Results are kept in a MatchResult, an insertion-ordered map from file name
// to the directories containing it. Totals accumulates the distinct names and
// directories across several searches.
//
//	s := search.New(search.DefaultOptions())
//	result := s.Search("te*t.exe", dirs)
//	result.Each(func(name string, dirs []string) {
//	    fmt.Println(name, dirs)
//	})
package search
