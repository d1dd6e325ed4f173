package mounts

// makeDevice builds a device number using the classic 8-bit encoding.
func makeDevice(major, minor uint32) uint64 {
	return uint64(major)<<8 | uint64(minor)
}
