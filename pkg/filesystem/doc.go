// Package filesystem provides the filesystem metadata primitives used by
// fsinspect: acquisition of raw stat information, decoding of mode bits into
// types and permission strings, size formatting, path resolution for display,
// and directory entry counting. It targets POSIX systems.
package filesystem
