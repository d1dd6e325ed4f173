package mounts

// split splits a device number into its major and minor components. Windows
// has no device number encoding, so the classic 8-bit split is used.
func split(device uint64) (uint32, uint32) {
	return uint32(device >> 8), uint32(device & 0xff)
}
