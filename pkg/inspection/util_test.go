package inspection

import (
	"strconv"
)

// itoa formats a signed integer.
func itoa(value int) string {
	return strconv.Itoa(value)
}

// utoa formats an unsigned integer.
func utoa(value uint64) string {
	return strconv.FormatUint(value, 10)
}
