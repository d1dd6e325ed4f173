package filesystem

import (
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// initialWorkingDirectoryCapacity is the initial buffer size used when
	// querying the working directory. The buffer is doubled each time the
	// query reports that it's too small.
	initialWorkingDirectoryCapacity = 4096
)

// isExplicitlyRelative returns whether or not a path starts with a reference
// to the current directory ("./") or the parent directory (".."). A bare "."
// is not considered explicitly relative.
func isExplicitlyRelative(path string) bool {
	return len(path) >= 2 && path[0] == '.' && (path[1] == '/' || path[1] == '.')
}

// ResolvePath converts a user-supplied path into an absolute path for display.
// Absolute paths are returned unchanged. Explicitly relative paths (those
// starting with "./" or "..") are fully canonicalized, resolving "." and ".."
// components as well as symbolic links against the filesystem. Any other path
// is simply appended to the current working directory, without any
// canonicalization.
func ResolvePath(path string) (string, error) {
	// Handle absolute paths.
	if filepath.IsAbs(path) {
		return path, nil
	}

	// Handle explicitly relative paths. EvalSymlinks processes ".." components
	// after resolving the links that precede them, so the result is physical.
	if isExplicitlyRelative(path) {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return "", errors.Wrap(err, "unable to resolve path")
		}
		if !filepath.IsAbs(resolved) {
			workingDirectory, err := WorkingDirectory()
			if err != nil {
				return "", err
			}
			resolved = filepath.Join(workingDirectory, resolved)
		}
		return resolved, nil
	}

	// Handle implicitly relative paths.
	workingDirectory, err := WorkingDirectory()
	if err != nil {
		return "", err
	}
	return workingDirectory + "/" + path, nil
}
