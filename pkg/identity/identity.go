// Package identity resolves numeric user and group IDs to their names using
// the system's user and group databases.
package identity

import (
	userpkg "os/user"
	"strconv"

	"github.com/mutagen-io/fsinspect/pkg/logging"
)

// Resolver performs user and group name lookups. Lookups that fail, whether
// because the ID is unknown or because the database is unavailable, are
// treated as misses.
type Resolver struct {
	// logger is the underlying logger.
	logger *logging.Logger
}

// NewResolver creates a new resolver.
func NewResolver(logger *logging.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// User returns the name of the user with the specified ID. It returns false if
// the user can't be found.
func (r *Resolver) User(id uint32) (string, bool) {
	identifier := strconv.FormatUint(uint64(id), 10)
	user, err := userpkg.LookupId(identifier)
	if err != nil {
		r.logger.Debugf("Unable to look up user %s: %v", identifier, err)
		return "", false
	}
	return user.Username, true
}

// Group returns the name of the group with the specified ID. It returns false
// if the group can't be found.
func (r *Resolver) Group(id uint32) (string, bool) {
	identifier := strconv.FormatUint(uint64(id), 10)
	group, err := userpkg.LookupGroupId(identifier)
	if err != nil {
		r.logger.Debugf("Unable to look up group %s: %v", identifier, err)
		return "", false
	}
	return group.Name, true
}
