package tzdb

import (
	"fmt"
	"strings"
	"time"

	// Lookups keep working on hosts without a zoneinfo directory.
	_ "time/tzdata"
)

type systemDatabase struct{}

// System returns the Database backed by Go's time package.
func System() Database {
	return systemDatabase{}
}

func (systemDatabase) LookupByName(name string) (*time.Location, error) {
	// time.LoadLocation maps "" to UTC and "Local" to the host zone; both have
	// dedicated resolver branches and must not be reachable through names.
	if strings.TrimSpace(name) == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrZoneNotFound, name, err)
	}
	return loc, nil
}

func (systemDatabase) Local() *time.Location {
	return time.Local
}

func (systemDatabase) FixedOffset(seconds int) *time.Location {
	return fixedOffset(seconds)
}

func (systemDatabase) OffsetAt(loc *time.Location, at time.Time) time.Duration {
	return offsetAt(loc, at)
}

func (systemDatabase) NameOf(loc *time.Location, at time.Time) (string, bool) {
	return nameOf(loc, at)
}
