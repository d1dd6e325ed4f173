//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

const (
	// errAccess is the error code indicating denied access.
	errAccess = unix.EACCES
	// errLoop is the error code indicating a symbolic link loop.
	errLoop = unix.ELOOP
)
