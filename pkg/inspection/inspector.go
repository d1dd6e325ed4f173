// Package inspection builds reports describing a single filesystem entry from
// its raw metadata.
package inspection

import (
	"github.com/mutagen-io/fsinspect/pkg/filesystem"
	"github.com/mutagen-io/fsinspect/pkg/logging"
)

// MountResolver resolves a device ID to the mount point of its filesystem. An
// empty result indicates that the mount point couldn't be determined.
type MountResolver interface {
	Resolve(device uint64) string
}

// IdentityResolver resolves user and group IDs to names.
type IdentityResolver interface {
	User(id uint32) (string, bool)
	Group(id uint32) (string, bool)
}

// Inspector assembles reports. Each report field is computed independently, so
// a failure computing one field only affects that field.
type Inspector struct {
	// mounts is the mount point resolver.
	mounts MountResolver
	// identities is the user and group name resolver.
	identities IdentityResolver
	// logger is the underlying logger.
	logger *logging.Logger
}

// NewInspector creates a new inspector using the specified resolvers.
func NewInspector(mounts MountResolver, identities IdentityResolver, logger *logging.Logger) *Inspector {
	return &Inspector{
		mounts:     mounts,
		identities: identities,
		logger:     logger,
	}
}

// describePathError converts a path resolution error into a report value.
func describePathError(err error) string {
	switch {
	case filesystem.IsPermissionDenied(err):
		return "Permission denied"
	case filesystem.IsNotFound(err):
		return "No such file or directory"
	default:
		return err.Error()
	}
}

// describeEntryCountError converts an entry counting error into a report
// value.
func describeEntryCountError(err error) string {
	switch {
	case filesystem.IsPermissionDenied(err):
		return "Permission denied"
	case filesystem.IsSymbolicLinkLoop(err):
		return "Unknown (symlink loop)"
	default:
		return err.Error()
	}
}

// Inspect builds a report for the entry described by metadata.
func (i *Inspector) Inspect(metadata *filesystem.Metadata) *Report {
	report := &Report{
		FileID:   metadata.FileID,
		DeviceID: metadata.DeviceID,
		UserID:   metadata.UserID,
		GroupID:  metadata.GroupID,
	}

	// Resolve the path.
	if path, err := filesystem.ResolvePath(metadata.Path); err != nil {
		i.logger.Debugf("Unable to resolve %s: %v", metadata.Path, err)
		report.Path = describePathError(err)
	} else {
		report.Path = path
	}
	i.logger.Tracef("Path: %s", report.Path)

	// Resolve the mount point.
	report.MountPoint = i.mounts.Resolve(metadata.DeviceID)
	i.logger.Tracef("Mount point: %q", report.MountPoint)

	// Resolve owner names. Misses leave the names empty.
	report.UserName, _ = i.identities.User(metadata.UserID)
	report.GroupName, _ = i.identities.Group(metadata.GroupID)
	i.logger.Tracef("Owner: %q:%q", report.UserName, report.GroupName)

	// Classify the entry and compute type-specific fields.
	report.Type = metadata.Mode.Type()
	if report.Type.IsDevice() {
		specialDeviceID := metadata.SpecialDeviceID
		report.SpecialDeviceID = &specialDeviceID
	} else if report.Type == filesystem.TypeDirectory {
		report.Entries = &EntryCount{}
		if count, err := filesystem.CountEntries(metadata.Path, i.logger); err != nil {
			i.logger.Debugf("Unable to count entries in %s: %v", metadata.Path, err)
			report.Entries.Diagnostic = describeEntryCountError(err)
		} else {
			report.Entries.Count = count
		}
	}
	i.logger.Tracef("Type: %v", report.Type)

	// Decode permissions and size.
	report.Permissions = metadata.Mode.Permissions()
	report.SizeBytes = metadata.Size
	report.Size = filesystem.FormatSize(metadata.Size)

	// Done.
	return report
}
