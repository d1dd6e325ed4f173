//go:build !windows

package filesystem

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/fsinspect/pkg/logging"
)

// createFiles creates the specified number of empty regular files in a
// directory.
func createFiles(t *testing.T, directory string, names ...string) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Create files.
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(directory, name), []byte(name), 0600); err != nil {
			t.Fatal("unable to create file:", err)
		}
	}
}

// TestCountEntriesEmpty tests counting in an empty directory, where the "."
// and ".." entries must not be counted.
func TestCountEntriesEmpty(t *testing.T) {
	if count, err := CountEntries(t.TempDir(), nil); err != nil {
		t.Fatal("unable to count entries:", err)
	} else if count != 0 {
		t.Error("unexpected entry count for empty directory:", count)
	}
}

// TestCountEntriesMixed tests that regular files, directories, and symbolic
// links are counted while pipes and sockets are not.
func TestCountEntriesMixed(t *testing.T) {
	// Create a temporary directory.
	directory := t.TempDir()

	// Create regular files, directories, and symbolic links.
	createFiles(t, directory, "a", "b", "c")
	for _, name := range []string{"d1", "d2"} {
		if err := os.Mkdir(filepath.Join(directory, name), 0700); err != nil {
			t.Fatal("unable to create directory:", err)
		}
	}
	if err := os.Symlink("a", filepath.Join(directory, "link")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	// Create a named pipe.
	if err := unix.Mkfifo(filepath.Join(directory, "pipe"), 0600); err != nil {
		t.Fatal("unable to create named pipe:", err)
	}

	// Create a socket. Socket paths are length-limited, so skip this part of
	// the test if the temporary directory path is too long.
	socketPath := filepath.Join(directory, "s")
	if listener, err := net.Listen("unix", socketPath); err == nil {
		defer listener.Close()
	} else {
		t.Log("unable to create socket:", err)
	}

	// Count entries.
	logger := logging.NewLogger(logging.LevelTrace, &bytes.Buffer{})
	if count, err := CountEntries(directory, logger); err != nil {
		t.Fatal("unable to count entries:", err)
	} else if count != 6 {
		t.Error("unexpected entry count:", count, "!= 6")
	}
}

// TestCountEntriesBrokenSymbolicLink tests that a dangling symbolic link is
// still counted.
func TestCountEntriesBrokenSymbolicLink(t *testing.T) {
	// Create three files and a dangling symbolic link.
	directory := t.TempDir()
	createFiles(t, directory, "one", "two", "three")
	if err := os.Symlink("nowhere", filepath.Join(directory, "dangling")); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	// Count entries.
	if count, err := CountEntries(directory, nil); err != nil {
		t.Fatal("unable to count entries:", err)
	} else if count != 4 {
		t.Error("unexpected entry count:", count, "!= 4")
	}
}

// TestCountEntriesNotFound tests that counting fails for non-existent paths.
func TestCountEntriesNotFound(t *testing.T) {
	if _, err := CountEntries(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("entry count succeeded for non-existent path")
	} else if !IsNotFound(err) {
		t.Error("unexpected error classification:", err)
	}
}

// TestCountEntriesSymbolicLinkLoop tests that a symbolic link loop is
// classified as such.
func TestCountEntriesSymbolicLinkLoop(t *testing.T) {
	// Create a pair of symbolic links that point at each other.
	directory := t.TempDir()
	first, second := filepath.Join(directory, "first"), filepath.Join(directory, "second")
	if err := os.Symlink(second, first); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	} else if err = os.Symlink(first, second); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	// Count entries.
	if _, err := CountEntries(first, nil); err == nil {
		t.Error("entry count succeeded for symbolic link loop")
	} else if !IsSymbolicLinkLoop(err) {
		t.Error("unexpected error classification:", err)
	}
}

// TestCountEntriesPermissionDenied tests that an unreadable directory is
// classified as a permission error.
func TestCountEntriesPermissionDenied(t *testing.T) {
	// Permissions aren't enforced for the superuser.
	if os.Geteuid() == 0 {
		t.Skip()
	}

	// Create an inaccessible directory.
	directory := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(directory, 0000); err != nil {
		t.Fatal("unable to create directory:", err)
	}
	defer os.Chmod(directory, 0700)

	// Count entries.
	if _, err := CountEntries(directory, nil); err == nil {
		t.Error("entry count succeeded for inaccessible directory")
	} else if !IsPermissionDenied(err) {
		t.Error("unexpected error classification:", err)
	}
}
