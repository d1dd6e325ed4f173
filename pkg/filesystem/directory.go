package filesystem

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/fsinspect/pkg/logging"
)

// countedEntryTypes is the set of entry types included in directory entry
// counts. Regular files have no type bits and are matched separately.
const countedEntryTypes = fs.ModeDir | fs.ModeSymlink

// CountEntries counts the immediate children of the directory at the specified
// path that are regular files, directories, or symbolic links. Other entry
// types (such as sockets, pipes, and devices) are excluded, as are the "." and
// ".." entries. Symbolic links are counted whether or not their targets exist.
func CountEntries(path string, logger *logging.Logger) (int, error) {
	// Open the directory.
	directory, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "unable to open directory")
	}
	defer directory.Close()

	// Read the directory contents. The type information for each entry comes
	// from the directory listing itself (falling back to an lstat where the
	// filesystem doesn't provide it), so symbolic links aren't followed.
	entries, err := directory.ReadDir(0)
	if err != nil {
		return 0, errors.Wrap(err, "unable to read directory contents")
	}

	// Count matching entries.
	var count int
	for _, entry := range entries {
		// The os package doesn't return these entries, but that's not
		// guaranteed by its documentation, so skip them explicitly.
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		// Check the entry type.
		if entryType := entry.Type(); entryType == 0 || entryType&countedEntryTypes != 0 {
			count++
		} else {
			logger.Tracef("Excluding %s from entry count (%v)", name, entryType)
		}
	}

	// Success.
	return count, nil
}
