package env

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jongio/pathfind/pathutil"
)

// Default variable names.
const (
	DefaultPathVar      = "PATH"
	DefaultExtensionVar = "PATHEXT"
)

// ErrPathUndefined indicates the search path variable is not set.
var ErrPathUndefined = errors.New("search path variable is undefined")

// Source looks up environment variables.
type Source interface {
	LookupEnv(key string) (string, bool)
}

// OS reads the process environment.
type OS struct{}

// LookupEnv implements Source.
func (OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed environment. Keys match case-insensitively on Windows,
// as they do in the real Windows environment.
type Map map[string]string

// LookupEnv implements Source.
func (m Map) LookupEnv(key string) (string, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	if runtime.GOOS == "windows" {
		for k, v := range m {
			if strings.EqualFold(k, key) {
				return v, true
			}
		}
	}
	return "", false
}

// Options selects the variables a Reader consults.
// Empty fields fall back to the defaults.
type Options struct {
	PathVar      string
	ExtensionVar string
	// Separator splits the search path. Defaults to the OS list separator.
	Separator string
	// ExtensionSeparator splits the extension list. Defaults to ";".
	ExtensionSeparator string
}

// Reader resolves the search path and extension list from a Source.
type Reader struct {
	src  Source
	opts Options
}

// NewReader creates a Reader over src.
func NewReader(src Source, opts Options) *Reader {
	if src == nil {
		src = OS{}
	}
	if opts.PathVar == "" {
		opts.PathVar = DefaultPathVar
	}
	if opts.ExtensionVar == "" {
		opts.ExtensionVar = DefaultExtensionVar
	}
	if opts.Separator == "" {
		opts.Separator = pathutil.DefaultListSeparator
	}
	if opts.ExtensionSeparator == "" {
		opts.ExtensionSeparator = pathutil.DefaultExtensionSeparator
	}
	return &Reader{src: src, opts: opts}
}

// PathVar returns the name of the search path variable.
func (r *Reader) PathVar() string { return r.opts.PathVar }

// ExtensionVar returns the name of the extension list variable.
func (r *Reader) ExtensionVar() string { return r.opts.ExtensionVar }

// SearchPath returns the directories of the search path variable, in order,
// without blank entries. A variable that is set but empty yields no
// directories and no error.
func (r *Reader) SearchPath() ([]string, error) {
	value, ok := r.src.LookupEnv(r.opts.PathVar)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathUndefined, r.opts.PathVar)
	}
	return pathutil.SplitList(value, r.opts.Separator), nil
}

// Extensions returns the entries of the extension list variable.
// It returns nil when the variable is unset or empty.
func (r *Reader) Extensions() []string {
	value, ok := r.src.LookupEnv(r.opts.ExtensionVar)
	if !ok || value == "" {
		return nil
	}
	return pathutil.SplitExtensions(value, r.opts.ExtensionSeparator)
}
