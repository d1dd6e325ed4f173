package filesystem

import (
	"fmt"
	"strconv"
)

const (
	// kibibyte is the number of bytes in a kibibyte.
	kibibyte = 1 << 10
	// mebibyte is the number of bytes in a mebibyte.
	mebibyte = 1 << 20
	// gibibyte is the number of bytes in a gibibyte.
	gibibyte = 1 << 30
)

// FormatSize scales a byte count to the largest binary unit and formats it
// with two decimal places and a K, M, or G suffix. Counts below one kibibyte
// are printed as a bare integer.
//
// The gigabyte branch only applies to counts strictly greater than one
// gibibyte, so a count of exactly 1073741824 prints as the bare integer.
func FormatSize(size uint64) string {
	switch {
	case size >= kibibyte && size < mebibyte:
		return fmt.Sprintf("%.2fK", float64(size)/kibibyte)
	case size >= mebibyte && size < gibibyte:
		return fmt.Sprintf("%.2fM", float64(size)/mebibyte)
	case size > gibibyte:
		return fmt.Sprintf("%.2fG", float64(size)/gibibyte)
	default:
		return strconv.FormatUint(size, 10)
	}
}
