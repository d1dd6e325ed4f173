//go:build !windows

package mounts

import (
	"golang.org/x/sys/unix"
)

// split splits a device number into its major and minor components using the
// platform's device number encoding.
func split(device uint64) (uint32, uint32) {
	return unix.Major(device), unix.Minor(device)
}
