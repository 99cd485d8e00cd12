package search

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MatchResult maps matched file names to the directories they were found in.
// Names iterate in the order they were first found; directories keep the
// order of the search path, including repeats from duplicated entries.
type MatchResult struct {
	m *orderedmap.OrderedMap[string, []string]
}

// NewMatchResult returns an empty MatchResult.
func NewMatchResult() *MatchResult {
	return &MatchResult{m: orderedmap.New[string, []string]()}
}

// Add records that name was found in dir.
func (r *MatchResult) Add(name, dir string) {
	dirs, _ := r.m.Get(name)
	r.m.Set(name, append(dirs, dir))
}

// Len returns the number of distinct file names.
func (r *MatchResult) Len() int {
	return r.m.Len()
}

// Empty reports whether nothing matched.
func (r *MatchResult) Empty() bool {
	return r.m.Len() == 0
}

// Dirs returns the directories name was found in.
func (r *MatchResult) Dirs(name string) []string {
	dirs, _ := r.m.Get(name)
	return dirs
}

// Names returns the matched file names in first-found order.
func (r *MatchResult) Names() []string {
	names := make([]string, 0, r.m.Len())
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every file name in first-found order.
func (r *MatchResult) Each(fn func(name string, dirs []string)) {
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Totals accumulates the distinct file names and directories of several
// MatchResults, each in first-seen order. The zero value is ready to use.
type Totals struct {
	names     []string
	dirs      []string
	seenNames map[string]bool
	seenDirs  map[string]bool
}

// Add merges r into the totals.
func (t *Totals) Add(r *MatchResult) {
	if t.seenNames == nil {
		t.seenNames = make(map[string]bool)
		t.seenDirs = make(map[string]bool)
	}
	r.Each(func(name string, dirs []string) {
		if !t.seenNames[name] {
			t.seenNames[name] = true
			t.names = append(t.names, name)
		}
		for _, dir := range dirs {
			if !t.seenDirs[dir] {
				t.seenDirs[dir] = true
				t.dirs = append(t.dirs, dir)
			}
		}
	})
}

// Filenames returns every distinct matched file name.
func (t *Totals) Filenames() []string {
	return t.names
}

// Directories returns every distinct directory holding a match.
func (t *Totals) Directories() []string {
	return t.dirs
}
