package inspection

import (
	"fmt"
	"io"
	"strings"

	"github.com/mutagen-io/fsinspect/pkg/filesystem"
)

const (
	// blank is the value rendered in place of a name that couldn't be
	// resolved.
	blank = " "
)

// EntryCount is the result of counting a directory's entries. Exactly one of
// its fields is meaningful: Diagnostic is non-empty if counting failed.
type EntryCount struct {
	// Count is the number of counted entries.
	Count int `json:"count"`
	// Diagnostic is a short description of why counting failed, if it did.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// String renders the entry count as it appears in the text report.
func (c *EntryCount) String() string {
	if c.Diagnostic != "" {
		return c.Diagnostic
	}
	return fmt.Sprintf("%d", c.Count)
}

// Report is the decoded description of a single filesystem entry. Its fields
// are listed in report order. Fields that only apply to certain entry types
// are nil when they don't apply.
type Report struct {
	// Path is the absolute path of the entry, or a diagnostic if the path
	// couldn't be resolved.
	Path string `json:"path"`
	// FileID is the inode number of the entry.
	FileID uint64 `json:"inode"`
	// DeviceID is the device ID of the filesystem containing the entry.
	DeviceID uint64 `json:"device"`
	// MountPoint is the mount point of the filesystem containing the entry. It
	// is empty if it couldn't be determined.
	MountPoint string `json:"mountPoint"`
	// UserID is the owning user's ID.
	UserID uint32 `json:"uid"`
	// UserName is the owning user's name. It is empty if it couldn't be
	// determined.
	UserName string `json:"user"`
	// GroupID is the owning group's ID.
	GroupID uint32 `json:"gid"`
	// GroupName is the owning group's name. It is empty if it couldn't be
	// determined.
	GroupName string `json:"group"`
	// Type is the entry type.
	Type filesystem.Type `json:"type"`
	// SpecialDeviceID is the device ID represented by the entry. It is only
	// set for block and character devices.
	SpecialDeviceID *uint64 `json:"specialDevice,omitempty"`
	// Entries is the directory entry count. It is only set for directories.
	Entries *EntryCount `json:"entries,omitempty"`
	// Permissions is the symbolic permission string.
	Permissions string `json:"permissions"`
	// SizeBytes is the entry size in bytes.
	SizeBytes uint64 `json:"sizeBytes"`
	// Size is the scaled, human-readable entry size.
	Size string `json:"size"`
}

// orBlank returns the value, or a blank placeholder if it's empty.
func orBlank(value string) string {
	if value == "" {
		return blank
	}
	return value
}

// String renders the report in its text form.
func (r *Report) String() string {
	var builder strings.Builder

	// Identity and location.
	fmt.Fprintf(&builder, "Path: %s\n\n", r.Path)
	fmt.Fprintf(&builder, "Inode:\t\t\t%d\n", r.FileID)
	fmt.Fprintf(&builder, "Home:\t\t\t%d\t\t%s\n", r.DeviceID, orBlank(r.MountPoint))
	fmt.Fprintf(&builder, "UID:\t\t\t%d\t\t%s\n", r.UserID, orBlank(r.UserName))
	fmt.Fprintf(&builder, "GID:\t\t\t%d\t\t%s\n", r.GroupID, orBlank(r.GroupName))

	// Type and type-specific information.
	fmt.Fprintf(&builder, "Type:\t\t\t%s\n", r.Type)
	if r.SpecialDeviceID != nil {
		fmt.Fprintf(&builder, "Dev. ID:\t\t%d\n", *r.SpecialDeviceID)
	}
	if r.Entries != nil {
		fmt.Fprintf(&builder, "# of entries:\t\t%s\n", r.Entries)
	}

	// Access and size.
	fmt.Fprintf(&builder, "Permissions:\t\t%s\n", r.Permissions)
	fmt.Fprintf(&builder, "Size:\t\t\t%s\n", r.Size)

	// Done.
	return builder.String()
}

// WriteTo implements io.WriterTo.WriteTo, writing the text form of the report.
func (r *Report) WriteTo(writer io.Writer) (int64, error) {
	n, err := io.WriteString(writer, r.String())
	return int64(n), err
}
