package filesystem

const (
	// ModePermissionsMask is a bit mask that isolates portable permission bits.
	ModePermissionsMask = Mode(0777)

	// ModePermissionUserRead is the user readable bit.
	ModePermissionUserRead = Mode(0400)
	// ModePermissionUserWrite is the user writable bit.
	ModePermissionUserWrite = Mode(0200)
	// ModePermissionUserExecute is the user executable bit.
	ModePermissionUserExecute = Mode(0100)
	// ModePermissionGroupRead is the group readable bit.
	ModePermissionGroupRead = Mode(0040)
	// ModePermissionGroupWrite is the group writable bit.
	ModePermissionGroupWrite = Mode(0020)
	// ModePermissionGroupExecute is the group executable bit.
	ModePermissionGroupExecute = Mode(0010)
	// ModePermissionOthersRead is the others readable bit.
	ModePermissionOthersRead = Mode(0004)
	// ModePermissionOthersWrite is the others writable bit.
	ModePermissionOthersWrite = Mode(0002)
	// ModePermissionOthersExecute is the others executable bit.
	ModePermissionOthersExecute = Mode(0001)
)

// permissionBits lists the permission bits in display order, paired with the
// character used when the bit is set.
var permissionBits = [9]struct {
	bit       Mode
	character byte
}{
	{ModePermissionUserRead, 'r'},
	{ModePermissionUserWrite, 'w'},
	{ModePermissionUserExecute, 'x'},
	{ModePermissionGroupRead, 'r'},
	{ModePermissionGroupWrite, 'w'},
	{ModePermissionGroupExecute, 'x'},
	{ModePermissionOthersRead, 'r'},
	{ModePermissionOthersWrite, 'w'},
	{ModePermissionOthersExecute, 'x'},
}

// Permissions decodes the permission bits of the mode into a 9-character
// symbolic string (e.g. "rw-r--r--"), with user bits first, then group, then
// others. Type bits and the setuid, setgid, and sticky bits are ignored.
func (m Mode) Permissions() string {
	var result [len(permissionBits)]byte
	for i, p := range permissionBits {
		if m&p.bit != 0 {
			result[i] = p.character
		} else {
			result[i] = '-'
		}
	}
	return string(result[:])
}
