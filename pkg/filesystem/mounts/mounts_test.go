package mounts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mutagen-io/fsinspect/pkg/logging"
)

// testTable is a mount table fixture in mountinfo format.
const testTable = `22 1 8:10 / /data rw,relatime shared:1 - ext4 /dev/sda10 rw
25 1 8:1 / / rw,relatime shared:2 - ext4 /dev/sda1 rw,errors=remount-ro
26 25 0:22 / /run/user-1000 rw,nosuid,nodev - tmpfs tmpfs rw,size=803000k
27 25 254:3 /snapshots /mnt/backup\040drive rw,noatime master:1 - btrfs /dev/nvme0n1p3 rw
28 25 7:0 /
`

// findTestCase represents a test case for Find.
type findTestCase struct {
	// major is the device major number.
	major uint32
	// minor is the device minor number.
	minor uint32
	// expectedFound indicates whether or not a match is expected.
	expectedFound bool
	// expectedMountPoint is the expected mount point.
	expectedMountPoint string
}

// run executes the test in the provided test context.
func (c *findTestCase) run(t *testing.T) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Perform the search.
	entry, found, err := Find(strings.NewReader(testTable), makeDevice(c.major, c.minor))
	if err != nil {
		t.Fatal("unable to scan mount table:", err)
	}

	// Check results.
	if found != c.expectedFound {
		t.Errorf("match mismatch for %d:%d: %t != %t", c.major, c.minor, found, c.expectedFound)
	}
	if entry.MountPoint != c.expectedMountPoint {
		t.Errorf("mount point mismatch for %d:%d: %q != %q", c.major, c.minor, entry.MountPoint, c.expectedMountPoint)
	}
}

// TestFindRoot tests resolution of a device mounted at the filesystem root,
// which must not be confused with a device whose minor number shares a
// prefix.
func TestFindRoot(t *testing.T) {
	testCase := &findTestCase{major: 8, minor: 1, expectedFound: true, expectedMountPoint: "/"}
	testCase.run(t)
}

// TestFindLongerMinor tests resolution of a device whose number is a superset
// of another device's number.
func TestFindLongerMinor(t *testing.T) {
	testCase := &findTestCase{major: 8, minor: 10, expectedFound: true, expectedMountPoint: "/data"}
	testCase.run(t)
}

// TestFindHyphenatedMountPoint tests that hyphens in mount points don't break
// field splitting.
func TestFindHyphenatedMountPoint(t *testing.T) {
	testCase := &findTestCase{major: 0, minor: 22, expectedFound: true, expectedMountPoint: "/run/user-1000"}
	testCase.run(t)
}

// TestFindEscapedMountPoint tests that octal escapes in mount points are
// decoded.
func TestFindEscapedMountPoint(t *testing.T) {
	testCase := &findTestCase{major: 254, minor: 3, expectedFound: true, expectedMountPoint: "/mnt/backup drive"}
	testCase.run(t)
}

// TestFindTruncatedRecord tests that a record lacking a mount point field
// isn't treated as a match.
func TestFindTruncatedRecord(t *testing.T) {
	testCase := &findTestCase{major: 7, minor: 0}
	testCase.run(t)
}

// TestFindAbsentDevice tests that an absent device yields no match and no
// error.
func TestFindAbsentDevice(t *testing.T) {
	testCase := &findTestCase{major: 253, minor: 7}
	testCase.run(t)
}

// TestFindIgnoresTrailingFields tests that the device string is only matched
// against the fields preceding the separator.
func TestFindIgnoresTrailingFields(t *testing.T) {
	table := "30 25 9:9 / /srv rw - ext4 /dev/md0 rw,note=4:2\n"
	if _, found, err := Find(strings.NewReader(table), makeDevice(4, 2)); err != nil {
		t.Fatal("unable to scan mount table:", err)
	} else if found {
		t.Error("device matched in trailing fields")
	}
}

// TestUnescapeMalformed tests that malformed escapes are preserved.
func TestUnescapeMalformed(t *testing.T) {
	if result := unescape(`/a\09b\`); result != `/a\09b\` {
		t.Error("malformed escape modified:", result)
	}
	if result := unescape(`/a\777b`); result != `/a\777b` {
		t.Error("out-of-range escape modified:", result)
	}
	if result := unescape(`/a\400\040b`); result != `/a\400 b` {
		t.Error("out-of-range escape not preserved alongside valid escape:", result)
	}
	if result := unescape(`/a\134b`); result != `/a\b` {
		t.Error("backslash escape not decoded:", result)
	}
}

// TestResolverMissingTable tests that an unreadable mount table yields an
// empty result.
func TestResolverMissingTable(t *testing.T) {
	logger := logging.NewLogger(logging.LevelDebug, &bytes.Buffer{})
	resolver := NewResolver(filepath.Join(t.TempDir(), "absent"), logger)
	if result := resolver.Resolve(makeDevice(8, 1)); result != "" {
		t.Error("resolution succeeded without mount table:", result)
	}
}

// TestResolverTableFile tests resolution against a mount table on disk.
func TestResolverTableFile(t *testing.T) {
	// Write the mount table.
	path := filepath.Join(t.TempDir(), "mountinfo")
	if err := os.WriteFile(path, []byte(testTable), 0600); err != nil {
		t.Fatal("unable to write mount table:", err)
	}

	// Create the resolver.
	logger := logging.NewLogger(logging.LevelDebug, &bytes.Buffer{})
	resolver := NewResolver(path, logger)

	// Check resolution.
	if result := resolver.Resolve(makeDevice(8, 10)); result != "/data" {
		t.Error("unexpected mount point:", result)
	}
	if result := resolver.Resolve(makeDevice(200, 1)); result != "" {
		t.Error("unexpected mount point for absent device:", result)
	}
}

// TestResolverDefaultTable tests that an empty table path selects the default
// mount table.
func TestResolverDefaultTable(t *testing.T) {
	if resolver := NewResolver("", nil); resolver.tablePath != DefaultTablePath {
		t.Error("default mount table not used:", resolver.tablePath)
	}
}
