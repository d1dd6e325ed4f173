//go:build !windows

package filesystem

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// newMetadata converts a raw stat result into a Metadata object.
func newMetadata(path string, stat *unix.Stat_t) *Metadata {
	return &Metadata{
		Path:            path,
		Mode:            Mode(stat.Mode),
		Size:            uint64(stat.Size),
		DeviceID:        uint64(stat.Dev),
		FileID:          uint64(stat.Ino),
		UserID:          stat.Uid,
		GroupID:         stat.Gid,
		SpecialDeviceID: uint64(stat.Rdev),
	}
}

// Lstat queries metadata for the specified path without following a trailing
// symbolic link.
func Lstat(path string) (*Metadata, error) {
	var stat unix.Stat_t
	if err := lstatRetryingOnEINTR(path, &stat); err != nil {
		return nil, errors.Wrap(err, "unable to query metadata")
	}
	return newMetadata(path, &stat), nil
}

// Stat queries metadata for the specified path, following symbolic links.
func Stat(path string) (*Metadata, error) {
	var stat unix.Stat_t
	if err := statRetryingOnEINTR(path, &stat); err != nil {
		return nil, errors.Wrap(err, "unable to query metadata")
	}
	return newMetadata(path, &stat), nil
}
