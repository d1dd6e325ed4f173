package filesystem

import (
	"github.com/pkg/errors"
)

// errUnsupported is returned by metadata queries on Windows, where the stat
// fields required for inspection (inode, owner, group, device numbers) aren't
// exposed.
var errUnsupported = errors.New("metadata inspection not supported on Windows")

// Lstat queries metadata for the specified path without following a trailing
// symbolic link. It is unsupported on Windows.
func Lstat(_ string) (*Metadata, error) {
	return nil, errUnsupported
}

// Stat queries metadata for the specified path, following symbolic links. It
// is unsupported on Windows.
func Stat(_ string) (*Metadata, error) {
	return nil, errUnsupported
}
