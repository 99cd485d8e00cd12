package search

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"syscall"

	"github.com/jongio/pathfind/logutil"
	"github.com/jongio/pathfind/pathutil"
)

// Options configures a Searcher.
type Options struct {
	// CaseInsensitive matches names regardless of case.
	CaseInsensitive bool

	// ReadDir lists a directory. Defaults to os.ReadDir.
	ReadDir func(dir string) ([]fs.DirEntry, error)

	// Stat follows symbolic links found in a directory. Defaults to os.Stat.
	Stat func(path string) (fs.FileInfo, error)
}

// DefaultOptions matches the case sensitivity of the platform's usual
// filesystem: insensitive on Windows and macOS, sensitive elsewhere.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: runtime.GOOS == "windows" || runtime.GOOS == "darwin",
		ReadDir:         os.ReadDir,
		Stat:            os.Stat,
	}
}

// Searcher lists directories looking for files that match a pattern.
type Searcher struct {
	opts Options
	log  *logutil.ComponentLogger
}

// New creates a Searcher. Nil functions in opts fall back to the os package.
func New(opts Options) *Searcher {
	if opts.ReadDir == nil {
		opts.ReadDir = os.ReadDir
	}
	if opts.Stat == nil {
		opts.Stat = os.Stat
	}
	return &Searcher{opts: opts, log: logutil.NewLogger("search")}
}

// Search returns the files matching pattern in each of dirs. Blank entries
// are skipped, and a directory that is missing or cannot be read contributes
// no matches. Directories are reported with a trailing separator.
func (s *Searcher) Search(pattern string, dirs []string) *MatchResult {
	result := NewMatchResult()
	log := s.log.WithFields("pattern", pattern)

	m, err := newMatcher(pattern, s.opts.CaseInsensitive)
	if err != nil {
		log.Debug("pattern rejected", "error", err)
		return result
	}

	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		for _, name := range s.list(dir, m, log) {
			result.Add(name, pathutil.WithTrailingSeparator(dir))
		}
	}

	log.Debug("search complete", "names", result.Len())
	return result
}

// list returns the names of the non-directory entries of dir that match m.
func (s *Searcher) list(dir string, m *matcher, log *logutil.ComponentLogger) []string {
	entries, err := s.opts.ReadDir(dir)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
			log.Debug("skipping missing directory", "dir", dir)
		default:
			log.Debug("skipping unreadable directory", "dir", dir, "error", err)
		}
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !m.match(name) || s.isDir(dir, entry) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// isDir reports whether entry is a directory, following symbolic links.
// A link that cannot be resolved counts as a directory so it is not reported.
func (s *Searcher) isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := s.opts.Stat(pathutil.JoinFile(dir, entry.Name()))
	if err != nil {
		return true
	}
	return info.IsDir()
}
