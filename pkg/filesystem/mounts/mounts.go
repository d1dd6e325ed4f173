// Package mounts locates the mount point backing a device by scanning the
// kernel's per-process mount table (in the mountinfo format described in
// proc(5)).
package mounts

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/fsinspect/pkg/logging"
)

const (
	// DefaultTablePath is the default location of the mount table.
	DefaultTablePath = "/proc/self/mountinfo"

	// optionalFieldsSeparator separates the leading fields of a mountinfo
	// record (which include the device number, root, and mount point) from
	// the filesystem type and source fields.
	optionalFieldsSeparator = " - "

	// mountPointOffset is the offset of the mount point field relative to the
	// device number field (the root field lies between them).
	mountPointOffset = 2

	// maximumRecordLength is the maximum length of a single mount table record.
	// Paths in the table may be up to PATH_MAX long (multiple times), so the
	// default scanner limit isn't safe.
	maximumRecordLength = 1024 * 1024
)

// Entry is a single parsed mount table record, restricted to the fields used
// for mount resolution.
type Entry struct {
	// Device is the major:minor device number string for the mount.
	Device string
	// MountPoint is the mount point path, with octal escapes decoded.
	MountPoint string
}

// FormatDevice formats a device number in the major:minor notation used by
// the mount table.
func FormatDevice(device uint64) string {
	major, minor := split(device)
	return strconv.FormatUint(uint64(major), 10) + ":" + strconv.FormatUint(uint64(minor), 10)
}

// parseEntry parses a mount table record in search of the specified device
// string. Only the portion of the record before the optional fields separator
// is considered. The first field exactly equal to the device string is treated
// as the device number field, and the mount point is taken from the field two
// positions after it. It returns false if the device string doesn't appear or
// if the record is truncated.
func parseEntry(record, device string) (Entry, bool) {
	// Isolate the leading portion of the record.
	if index := strings.Index(record, optionalFieldsSeparator); index != -1 {
		record = record[:index]
	}

	// Search for the device number and extract the mount point.
	fields := strings.Fields(record)
	for i, field := range fields {
		if field != device {
			continue
		}
		if i+mountPointOffset >= len(fields) {
			return Entry{}, false
		}
		return Entry{
			Device:     field,
			MountPoint: unescape(fields[i+mountPointOffset]),
		}, true
	}

	// No match.
	return Entry{}, false
}

// unescape decodes the three-digit octal escapes (e.g. "\040" for a space)
// that the kernel uses for whitespace and backslashes in mount table paths.
// Malformed escapes, including those outside of the byte range, are left
// as-is.
func unescape(value string) string {
	// Avoid allocation in the common case.
	if !strings.Contains(value, "\\") {
		return value
	}

	// Decode escapes.
	var result strings.Builder
	result.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+3 < len(value) && isOctal(value[i+1]) && isOctal(value[i+2]) && isOctal(value[i+3]) {
			if decoded, err := strconv.ParseUint(value[i+1:i+4], 8, 8); err == nil {
				result.WriteByte(byte(decoded))
				i += 3
				continue
			}
		}
		result.WriteByte(value[i])
	}
	return result.String()
}

// isOctal returns whether or not a byte is an octal digit.
func isOctal(b byte) bool {
	return '0' <= b && b <= '7'
}

// Find scans a mount table in search of the specified device and returns the
// first matching entry. It returns false if no record matches.
func Find(table io.Reader, device uint64) (Entry, bool, error) {
	// Compute the device string.
	target := FormatDevice(device)

	// Create a scanner with enough room for long records.
	scanner := bufio.NewScanner(table)
	scanner.Buffer(make([]byte, 0, 4096), maximumRecordLength)

	// Scan records.
	for scanner.Scan() {
		if entry, ok := parseEntry(scanner.Text(), target); ok {
			return entry, true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, false, errors.Wrap(err, "unable to read mount table")
	}

	// No match.
	return Entry{}, false, nil
}

// Resolver resolves device numbers to mount points using a mount table file.
type Resolver struct {
	// tablePath is the path to the mount table.
	tablePath string
	// logger is the underlying logger.
	logger *logging.Logger
}

// NewResolver creates a new resolver that reads the mount table at the
// specified path. If the path is empty, DefaultTablePath is used.
func NewResolver(tablePath string, logger *logging.Logger) *Resolver {
	if tablePath == "" {
		tablePath = DefaultTablePath
	}
	return &Resolver{
		tablePath: tablePath,
		logger:    logger,
	}
}

// Resolve returns the mount point backing the specified device. Lookup
// failures of any kind, including an unreadable mount table, yield an empty
// string. The table is re-read on every call.
func (r *Resolver) Resolve(device uint64) string {
	// Open the mount table.
	table, err := os.Open(r.tablePath)
	if err != nil {
		r.logger.Debugf("Unable to open mount table: %v", err)
		return ""
	}
	defer table.Close()

	// Perform the search.
	entry, ok, err := Find(table, device)
	if err != nil {
		r.logger.Debugf("Mount table scan failed: %v", err)
		return ""
	} else if !ok {
		r.logger.Debugf("No mount table record for device %s", FormatDevice(device))
		return ""
	}

	// Success.
	r.logger.Tracef("Device %s is mounted at %s", entry.Device, entry.MountPoint)
	return entry.MountPoint
}
