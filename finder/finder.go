// Package finder runs a complete pathfind search: it validates the name,
// reads the environment, searches every candidate pattern, and reports.
package finder

import (
	"os"

	"github.com/jongio/pathfind/env"
	"github.com/jongio/pathfind/logutil"
	"github.com/jongio/pathfind/pathutil"
	"github.com/jongio/pathfind/report"
	"github.com/jongio/pathfind/search"
	"github.com/jongio/pathfind/security"
)

// Config holds the settings of a run. Zero fields take their defaults.
type Config struct {
	// Env supplies environment variables. Defaults to the process environment.
	Env env.Source
	// PathVar names the search path variable. Defaults to PATH.
	PathVar string
	// ExtensionVar names the extension list variable. Defaults to PATHEXT.
	ExtensionVar string
	// Separator splits the search path. Defaults to the OS list separator.
	Separator string
	// ExtensionSeparator splits the extension list. Defaults to ";".
	ExtensionSeparator string
	// Search configures directory listing and matching.
	Search search.Options
	// Getwd returns the current directory. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// DefaultConfig returns the configuration used by the command line.
func DefaultConfig() Config {
	return Config{
		Env:                env.OS{},
		PathVar:            env.DefaultPathVar,
		ExtensionVar:       env.DefaultExtensionVar,
		Separator:          pathutil.DefaultListSeparator,
		ExtensionSeparator: pathutil.DefaultExtensionSeparator,
		Search:             search.DefaultOptions(),
		Getwd:              os.Getwd,
	}
}

// Outcome describes a completed run.
type Outcome struct {
	Status Status
	// Patterns are the patterns searched, in order.
	Patterns []string
	// Totals are the distinct names and directories found on the search path.
	Totals search.Totals
	// FoundOnPath reports whether anything matched on the search path.
	FoundOnPath bool
	// SearchedCurrentDir reports whether the current directory was searched
	// separately because it is not on the search path.
	SearchedCurrentDir bool
	// FoundInCurrentDir reports whether that separate search matched.
	FoundInCurrentDir bool
}

// Finder runs searches and reports them.
type Finder struct {
	reader   *env.Reader
	searcher *search.Searcher
	rep      *report.Reporter
	getwd    func() (string, error)
	log      *logutil.ComponentLogger
}

// New creates a Finder that reports through rep.
func New(cfg Config, rep *report.Reporter) *Finder {
	if cfg.Getwd == nil {
		cfg.Getwd = os.Getwd
	}
	reader := env.NewReader(cfg.Env, env.Options{
		PathVar:            cfg.PathVar,
		ExtensionVar:       cfg.ExtensionVar,
		Separator:          cfg.Separator,
		ExtensionSeparator: cfg.ExtensionSeparator,
	})
	return &Finder{
		reader:   reader,
		searcher: search.New(cfg.Search),
		rep:      rep,
		getwd:    cfg.Getwd,
		log:      logutil.NewLogger("finder").WithOperation("find"),
	}
}

// PathVar returns the name of the search path variable in use.
func (f *Finder) PathVar() string { return f.reader.PathVar() }

// ExtensionVar returns the name of the extension list variable in use.
func (f *Finder) ExtensionVar() string { return f.reader.ExtensionVar() }

// Find searches for name and prints the results. A non-nil error is always
// an *Error and means the run ended with StatusError; nothing is printed for
// it, see Fail.
func (f *Finder) Find(name string) (*Outcome, error) {
	log := f.log.WithFields("name", name)

	if err := security.ValidateFilename(name); err != nil {
		return nil, ValidationError(err)
	}

	dirs, err := f.reader.SearchPath()
	if err != nil {
		return nil, EnvironmentError(err)
	}
	log.Debug("search path resolved", "var", f.reader.PathVar(), "dirs", len(dirs))

	cwd, err := f.getwd()
	if err != nil {
		return nil, UnexpectedError(err)
	}

	out := &Outcome{SearchedCurrentDir: !pathutil.ContainsDir(dirs, cwd)}
	out.Patterns = f.patterns(name, log)

	for _, pattern := range out.Patterns {
		result := f.searcher.Search(pattern, dirs)
		out.Totals.Add(result)
		f.rep.Matches(result)
		out.FoundOnPath = out.FoundOnPath || !result.Empty()

		if out.SearchedCurrentDir {
			local := f.searcher.Search(pattern, []string{cwd})
			out.FoundInCurrentDir = out.FoundInCurrentDir || !local.Empty()
		}
	}

	out.Status = f.summarize(out)
	return out, nil
}

// patterns returns the patterns to search for name. A name without '.', '*'
// or '?' is expanded with the extension list; if that list is unset the bare
// name is not searched at all.
func (f *Finder) patterns(name string, log *logutil.ComponentLogger) []string {
	if pathutil.HasExtensionMarker(name) {
		if security.HasWildcard(name) {
			log.Debug("searching wildcard pattern")
		} else {
			log.Debug("searching literal name")
		}
		return []string{name}
	}

	f.rep.ExtensionNotice()
	exts := f.reader.Extensions()
	if len(exts) == 0 {
		log.Debug("extension list empty, nothing to search", "var", f.reader.ExtensionVar())
		return nil
	}
	candidates := pathutil.ExpandExtensions(name, exts)
	log.Debug("expanded with extension list", "var", f.reader.ExtensionVar(), "patterns", candidates)
	return candidates
}

func (f *Finder) summarize(out *Outcome) Status {
	if !out.FoundOnPath {
		f.rep.NotFound(out.FoundInCurrentDir)
		if out.FoundInCurrentDir {
			return StatusSuccess
		}
		return StatusNotFound
	}

	names, dirs := len(out.Totals.Filenames()), len(out.Totals.Directories())
	if names >= 2 || dirs >= 2 {
		f.rep.Summary(names, dirs)
	}
	if out.FoundInCurrentDir {
		f.rep.CurrentDirCaution()
	}
	return StatusSuccess
}

// Fail prints err and returns StatusError.
func (f *Finder) Fail(err error) Status {
	f.log.Debug("run failed", "kind", KindOf(err), "error", err)
	return Report(f.rep, err)
}

// Report prints the message for err on rep and returns StatusError. It does
// not need a Finder, so it also serves failures that happen before one exists.
func Report(rep *report.Reporter, err error) Status {
	switch KindOf(err) {
	case KindValidation:
		rep.InvalidFilename(err)
	case KindEnvironment:
		rep.PathUndefined()
	default:
		rep.Unexpected(Category(err), unwrapMessage(err))
	}
	return StatusError
}

// unwrapMessage returns the message of the error inside an *Error.
func unwrapMessage(err error) string {
	if fe, ok := err.(*Error); ok && fe.Err != nil {
		return fe.Err.Error()
	}
	return err.Error()
}
