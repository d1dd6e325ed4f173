package filesystem

// Type is the semantic category of a filesystem entry, derived from the type
// bits of its mode.
type Type uint8

const (
	// TypeUnknown indicates a type bit pattern that doesn't map to any known
	// category.
	TypeUnknown Type = iota
	// TypeDirectory indicates a directory.
	TypeDirectory
	// TypeBlockDevice indicates a block device.
	TypeBlockDevice
	// TypeCharacterDevice indicates a character device.
	TypeCharacterDevice
	// TypeFile indicates a regular file.
	TypeFile
	// TypePipe indicates a named pipe (FIFO).
	TypePipe
	// TypeSocket indicates a Unix domain socket.
	TypeSocket
	// TypeSymbolicLink indicates a symbolic link.
	TypeSymbolicLink
)

// Type classifies the mode based on its type bits. It is defined for every
// possible mode value, returning TypeUnknown for unmapped type patterns.
func (m Mode) Type() Type {
	switch m & ModeTypeMask {
	case ModeTypeDirectory:
		return TypeDirectory
	case ModeTypeBlockDevice:
		return TypeBlockDevice
	case ModeTypeCharacterDevice:
		return TypeCharacterDevice
	case ModeTypeFile:
		return TypeFile
	case ModeTypePipe:
		return TypePipe
	case ModeTypeSocket:
		return TypeSocket
	case ModeTypeSymbolicLink:
		return TypeSymbolicLink
	default:
		return TypeUnknown
	}
}

// IsDevice returns whether or not the type is a block or character device,
// i.e. whether or not the entry's special device ID is meaningful.
func (t Type) IsDevice() bool {
	return t == TypeBlockDevice || t == TypeCharacterDevice
}

// String provides a human-readable representation of a type.
func (t Type) String() string {
	switch t {
	case TypeDirectory:
		return "Directory"
	case TypeBlockDevice:
		return "Block device"
	case TypeCharacterDevice:
		return "Char. device"
	case TypeFile:
		return "Regular file"
	case TypePipe:
		return "Pipe/FIFO"
	case TypeSocket:
		return "Socket"
	case TypeSymbolicLink:
		return "Symbolic link"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText so that types are
// rendered by name in structured output.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
