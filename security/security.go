// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxFilenameLength is the longest file name, in characters, that can be searched for.
const MaxFilenameLength = 255

// ReservedCharacters lists the characters that may not appear in a file name.
const ReservedCharacters = `\/:<>|`

var (
	// ErrInvalidFilename is the parent of all file name validation errors.
	ErrInvalidFilename = errors.New("invalid file name")
	// ErrFilenameTooLong indicates the file name exceeds MaxFilenameLength.
	ErrFilenameTooLong = fmt.Errorf("%w: too long", ErrInvalidFilename)
	// ErrReservedCharacter indicates the file name contains one of ReservedCharacters.
	ErrReservedCharacter = fmt.Errorf("%w: reserved character", ErrInvalidFilename)
)

// ValidateFilename checks a file name for length and reserved characters.
// The * and ? wildcards are allowed. An empty name is valid: with an
// extension list it expands to the bare extensions.
func ValidateFilename(name string) error {
	if n := utf8.RuneCountInString(name); n > MaxFilenameLength {
		return fmt.Errorf("%w: %d characters (maximum %d)", ErrFilenameTooLong, n, MaxFilenameLength)
	}

	if i := strings.IndexAny(name, ReservedCharacters); i >= 0 {
		return fmt.Errorf("%w: %q", ErrReservedCharacter, name[i])
	}

	return nil
}

// HasWildcard reports whether the name contains a * or ? wildcard.
func HasWildcard(name string) bool {
	return strings.ContainsAny(name, "*?")
}
