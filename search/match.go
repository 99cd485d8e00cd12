package search

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// doublestar treats these as syntax; in a file name they are literal.
var metaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// matcher matches single file names against a '*'/'?' pattern.
type matcher struct {
	pattern string
	fold    bool
}

func newMatcher(pattern string, fold bool) (*matcher, error) {
	p := metaEscaper.Replace(pattern)
	if fold {
		p = strings.ToLower(p)
	}
	if !doublestar.ValidatePattern(p) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	return &matcher{pattern: p, fold: fold}, nil
}

func (m *matcher) match(name string) bool {
	if m.fold {
		name = strings.ToLower(name)
	}
	ok, err := doublestar.Match(m.pattern, name)
	return err == nil && ok
}
