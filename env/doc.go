// Package env reads the search path and extension list from environment variables.
//
// Variable lookup goes through the Source interface so callers and tests can
// substitute their own environment. OS reads the process environment; Map
// serves a fixed set of values.
//
// # Usage
//
//	r := env.NewReader(env.OS{}, env.Options{})
//	dirs, err := r.SearchPath()
//	if errors.Is(err, env.ErrPathUndefined) {
//	    // PATH is not set
//	}
//	exts := r.Extensions() // nil when PATHEXT is unset or empty
//
// The search path is split on the OS list separator and the extension list
// on ";", as Windows writes PATHEXT. Options overrides either.
package env
