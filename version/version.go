// Package version holds build information for pathfind and wires it into
// the root command's --version flag.
package version

import "fmt"

// Set via -ldflags "-X github.com/jongio/pathfind/version.Version=...".
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for the binary.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Name      string `json:"name"`
}

// New creates an Info from the ldflags-populated package variables.
func New(name string) *Info {
	return &Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		Name:      name,
	}
}

// Banner returns the one-line banner printed before every run.
func (i *Info) Banner() string {
	return fmt.Sprintf("%s v%s", i.Name, i.Version)
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
