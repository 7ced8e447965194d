// Package tzdb defines the timezone database contract the resolver depends on
// and ships the implementations used by the library: System wraps Go's time
// package (with the embedded IANA database as fallback), Static serves
// deterministic rules for tests, and Aliases maps alternate names onto another
// database.
//
// Every Database is expected to be safe for concurrent reads. None of the
// implementations in this package expose a mutation API after construction.
package tzdb

import (
	"errors"
	"time"
)

// ErrZoneNotFound is wrapped by LookupByName when a name cannot be resolved.
var ErrZoneNotFound = errors.New("tzdb: zone not found")

// Database resolves zone rules and answers offset/name queries against them.
// Rules are *time.Location values owned by the database.
type Database interface {
	// LookupByName resolves a zone identifier. Unknown names return a nil
	// location and an error wrapping ErrZoneNotFound.
	LookupByName(name string) (*time.Location, error)
	// Local returns the host's configured zone.
	Local() *time.Location
	// FixedOffset returns a rule with a constant offset of seconds east of UTC.
	FixedOffset(seconds int) *time.Location
	// OffsetAt returns the offset of loc at the given instant.
	OffsetAt(loc *time.Location, at time.Time) time.Duration
	// NameOf returns the abbreviation loc reports at the given instant. The
	// boolean is false when the rule carries no name.
	NameOf(loc *time.Location, at time.Time) (string, bool)
}

func offsetAt(loc *time.Location, at time.Time) time.Duration {
	if loc == nil {
		return 0
	}
	_, seconds := at.In(loc).Zone()
	return time.Duration(seconds) * time.Second
}

func nameOf(loc *time.Location, at time.Time) (string, bool) {
	if loc == nil {
		return "", false
	}
	name, _ := at.In(loc).Zone()
	return name, name != ""
}

// fixedOffset builds an unnamed rule; the resolver reports no display name
// for numeric offsets.
func fixedOffset(seconds int) *time.Location {
	return time.FixedZone("", seconds)
}
