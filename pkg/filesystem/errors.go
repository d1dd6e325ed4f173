package filesystem

import (
	"errors"
	"io/fs"
)

// IsPermissionDenied checks whether or not an error returned from a filesystem
// operation indicates that access to the path (or one of its components) was
// denied.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, errAccess)
}

// IsNotFound checks whether or not an error returned from a filesystem
// operation indicates that the path doesn't exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsSymbolicLinkLoop checks whether or not an error returned from a filesystem
// operation indicates that symbolic link resolution encountered a loop.
func IsSymbolicLinkLoop(err error) bool {
	return errors.Is(err, errLoop)
}
