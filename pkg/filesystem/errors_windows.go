package filesystem

import (
	"syscall"
)

const (
	// errAccess is the error code indicating denied access.
	errAccess = syscall.ERROR_ACCESS_DENIED
	// errLoop is the error code indicating a symbolic link loop.
	errLoop = syscall.ELOOP
)
