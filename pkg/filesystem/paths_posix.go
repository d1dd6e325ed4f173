//go:build !windows

package filesystem

import (
	"errors"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// openDirectoryFlags are the flags used to open directories while walking up
// from the working directory.
const openDirectoryFlags = unix.O_RDONLY | unix.O_DIRECTORY | unix.O_CLOEXEC

// WorkingDirectory returns the process' current working directory. It queries
// the operating system directly, growing its buffer until the full path fits.
// If the kernel refuses to report a path longer than PATH_MAX, the path is
// reconstructed by walking parent directories, so there's no upper bound on
// the length of the path.
func WorkingDirectory() (string, error) {
	for capacity := initialWorkingDirectoryCapacity; ; capacity *= 2 {
		// Attempt the query.
		buffer := make([]byte, capacity)
		length, err := getcwdRetryingOnEINTR(buffer)
		if errors.Is(err, unix.ERANGE) {
			continue
		} else if errors.Is(err, unix.ENAMETOOLONG) {
			result, err := walkWorkingDirectory()
			if err != nil {
				return "", pkgerrors.Wrap(err, "unable to query working directory")
			}
			return result, nil
		} else if err != nil {
			return "", pkgerrors.Wrap(err, "unable to query working directory")
		}

		// Some platforms include the terminating null byte in the length.
		if length > 0 && buffer[length-1] == 0 {
			length--
		}

		// Success.
		return string(buffer[:length]), nil
	}
}

// sameFile returns whether or not two stat results refer to the same
// filesystem entry.
func sameFile(first, second *unix.Stat_t) bool {
	return first.Dev == second.Dev && first.Ino == second.Ino
}

// findEntryName searches the directory referenced by the specified descriptor
// for the entry identified by target. The descriptor remains owned by the
// caller.
func findEntryName(directory int, target *unix.Stat_t) (string, error) {
	// Read the entry names using a duplicate descriptor, since closing the
	// resulting file closes its descriptor.
	duplicate, err := unix.Dup(directory)
	if err != nil {
		return "", pkgerrors.Wrap(err, "unable to duplicate directory descriptor")
	}
	file := os.NewFile(uintptr(duplicate), "..")
	names, err := file.Readdirnames(0)
	file.Close()
	if err != nil {
		return "", pkgerrors.Wrap(err, "unable to read parent directory contents")
	}

	// Match each entry against the target. The entry is queried, rather than
	// trusting any inode number in the listing itself, so that mount points
	// report the root of the mounted filesystem.
	var metadata unix.Stat_t
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		if err := fstatatRetryingOnEINTR(directory, name, &metadata, unix.AT_SYMLINK_NOFOLLOW); err != nil {
			continue
		}
		if sameFile(&metadata, target) {
			return name, nil
		}
	}

	// No match.
	return "", pkgerrors.New("unable to locate directory in parent")
}

// walkWorkingDirectory reconstructs the working directory path by walking up
// the directory hierarchy one parent at a time, identifying each component by
// its device and inode numbers. Directories are referenced through descriptors
// rather than paths, so no intermediate path is subject to PATH_MAX.
func walkWorkingDirectory() (string, error) {
	// Open the working directory.
	current, err := openatRetryingOnEINTR(unix.AT_FDCWD, ".", openDirectoryFlags, 0)
	if err != nil {
		return "", pkgerrors.Wrap(err, "unable to open working directory")
	}
	var currentMetadata unix.Stat_t
	if err := unix.Fstat(current, &currentMetadata); err != nil {
		unix.Close(current)
		return "", pkgerrors.Wrap(err, "unable to query working directory metadata")
	}

	// Walk upward until reaching the root, which is its own parent.
	var components []string
	for {
		// Open and query the parent.
		parent, err := openatRetryingOnEINTR(current, "..", openDirectoryFlags, 0)
		unix.Close(current)
		if err != nil {
			return "", pkgerrors.Wrap(err, "unable to open parent directory")
		}
		var parentMetadata unix.Stat_t
		if err := unix.Fstat(parent, &parentMetadata); err != nil {
			unix.Close(parent)
			return "", pkgerrors.Wrap(err, "unable to query parent directory metadata")
		}

		// Check for the root.
		if sameFile(&parentMetadata, &currentMetadata) {
			unix.Close(parent)
			break
		}

		// Identify the current directory's name within the parent.
		name, err := findEntryName(parent, &currentMetadata)
		if err != nil {
			unix.Close(parent)
			return "", err
		}
		components = append(components, name)

		// Move up.
		current, currentMetadata = parent, parentMetadata
	}

	// Components were collected from the leaf upward.
	for i, j := 0, len(components)-1; i < j; i, j = i+1, j-1 {
		components[i], components[j] = components[j], components[i]
	}
	return "/" + strings.Join(components, "/"), nil
}
