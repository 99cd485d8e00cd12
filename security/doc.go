// Package security validates user-supplied input before it reaches the filesystem.
//
// The only input pathfind accepts is a single file name, optionally containing
// the * and ? wildcards. A valid name:
//
//   - Is at most MaxFilenameLength characters long
//   - Contains none of the reserved characters \ / : < > |
//
// Wildcards are not rejected here; they are resolved by the search package.
//
// # Example Usage
//
//	if err := security.ValidateFilename(name); err != nil {
//	    if errors.Is(err, security.ErrFilenameTooLong) {
//	        // ask for a shorter name
//	    }
//	    return err
//	}
package security
