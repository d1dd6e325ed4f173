//go:build !windows

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// lstatRetryingOnEINTR is a wrapper around the lstat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func lstatRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Lstat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// statRetryingOnEINTR is a wrapper around the stat system call that retries on
// EINTR errors and returns on the first successful call or non-EINTR error.
func statRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Stat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// getcwdRetryingOnEINTR is a wrapper around the getcwd system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func getcwdRetryingOnEINTR(buffer []byte) (int, error) {
	for {
		result, err := unix.Getcwd(buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// openatRetryingOnEINTR is a wrapper around the openat system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR error.
func openatRetryingOnEINTR(directory int, path string, flags int, mode uint32) (int, error) {
	for {
		result, err := unix.Openat(directory, path, flags, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// fstatatRetryingOnEINTR is a wrapper around the fstatat system call that
// retries on EINTR errors and returns on the first successful call or non-EINTR
// error.
func fstatatRetryingOnEINTR(directory int, path string, metadata *unix.Stat_t, flags int) error {
	for {
		err := unix.Fstatat(directory, path, metadata, flags)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}
