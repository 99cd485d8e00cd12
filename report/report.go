// Package report prints search results and outcome messages.
package report

import (
	"errors"
	"strings"

	"github.com/jongio/pathfind/cliout"
	"github.com/jongio/pathfind/search"
	"github.com/jongio/pathfind/security"
)

// Reporter formats pathfind output on a cliout.Printer.
// PathVar and ExtensionVar name the variables in messages.
type Reporter struct {
	p            *cliout.Printer
	PathVar      string
	ExtensionVar string
}

// New creates a Reporter.
func New(p *cliout.Printer, pathVar, extensionVar string) *Reporter {
	return &Reporter{p: p, PathVar: pathVar, ExtensionVar: extensionVar}
}

// Printer returns the underlying printer.
func (r *Reporter) Printer() *cliout.Printer {
	return r.p
}

// Banner prints the program banner.
func (r *Reporter) Banner(text string) {
	r.p.Newline()
	r.p.Header("%s", text)
}

// ExtensionNotice explains that the extension list is being applied.
func (r *Reporter) ExtensionNotice() {
	r.p.Newline()
	r.p.Muted("(No extension specified; using %s environment variable extensions.)", r.ExtensionVar)
}

// Matches prints one section per matched file name, each preceded by a blank line.
func (r *Reporter) Matches(result *search.MatchResult) {
	for _, name := range result.Names() {
		r.p.Newline()
		r.p.Header("%s is present in:", name)
		for _, dir := range result.Dirs(name) {
			r.p.Item("%s", dir)
		}
	}
}

// NotFound reports that nothing matched on the search path. When the current
// directory holds a match it says so.
func (r *Reporter) NotFound(inCurrentDir bool) {
	r.p.Newline()
	r.p.Error("No matching file was found on the %s.", r.PathVar)

	if inCurrentDir {
		r.p.Newline()
		r.p.Warning("Note: A matching file *is* present in the current directory. (The current")
		r.p.Warning("directory is not on the %s).", r.PathVar)
	}
}

// Summary prints the count of distinct names and directories found.
func (r *Reporter) Summary(files, dirs int) {
	r.p.Newline()
	r.p.Success("%s total matching filename(s) found in %s %s folder(s).", r.p.Count(files), r.p.Count(dirs), r.PathVar)
}

// CurrentDirCaution warns that the current directory also holds a match.
func (r *Reporter) CurrentDirCaution() {
	r.p.Newline()
	r.p.Warning("Caution: A matching file is also present in the current directory. (The current")
	r.p.Warning("directory is not on the %s).", r.PathVar)
}

// InvalidFilename explains why a file name was rejected.
func (r *Reporter) InvalidFilename(err error) {
	r.p.Newline()
	switch {
	case errors.Is(err, security.ErrFilenameTooLong):
		r.p.Error("The specified file name is too long.  Please enter a file name that is %d", security.MaxFilenameLength)
		r.p.Error("characters or less in length.")
	case errors.Is(err, security.ErrReservedCharacter):
		r.p.Error("Please enter a filename that does not include these characters:  %s", spaced(security.ReservedCharacters))
	default:
		r.p.Error("Please enter a valid file name.")
	}
}

// PathUndefined reports that the search path variable is not set.
func (r *Reporter) PathUndefined() {
	r.p.Newline()
	r.p.Error("The %s environment variable is undefined.", r.PathVar)
}

// Unexpected reports an error nobody anticipated, with its category.
func (r *Reporter) Unexpected(category, message string) {
	r.p.Newline()
	r.p.Error("An unexpected error occurred:")
	r.p.Error("%s: %s", category, message)
}

func spaced(chars string) string {
	return strings.Join(strings.Split(chars, ""), " ")
}
