package filesystem

// Metadata encodes the raw stat information for a single filesystem entry.
// It is the immutable input from which an inspection report is built.
type Metadata struct {
	// Path is the path through which the metadata was acquired, exactly as
	// provided by the caller.
	Path string
	// Mode is the raw mode of the filesystem entry, including type bits.
	Mode Mode
	// Size is the size of the filesystem entry in bytes.
	Size uint64
	// DeviceID is the device ID of the filesystem on which the entry resides.
	// On POSIX systems, this is the value of the st_dev field of stat_t.
	DeviceID uint64
	// FileID is the file ID (inode number) for the filesystem entry.
	FileID uint64
	// UserID is the numeric ID of the owning user.
	UserID uint32
	// GroupID is the numeric ID of the owning group.
	GroupID uint32
	// SpecialDeviceID is the device ID represented by the entry itself (the
	// st_rdev field of stat_t). It is only meaningful for block and character
	// devices.
	SpecialDeviceID uint64
}
