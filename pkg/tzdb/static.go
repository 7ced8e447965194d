package tzdb

import (
	"fmt"
	"time"
)

// Static is an in-memory Database with a fixed set of named rules and a fixed
// local zone. It never consults the host, which keeps tests deterministic.
type Static struct {
	local *time.Location
	zones map[string]*time.Location
}

// NewStatic builds a Static database. A nil local zone defaults to UTC. The
// zones map is copied; nil entries are ignored.
func NewStatic(local *time.Location, zones map[string]*time.Location) *Static {
	if local == nil {
		local = time.UTC
	}
	copied := make(map[string]*time.Location, len(zones))
	for name, loc := range zones {
		if loc == nil {
			continue
		}
		copied[name] = loc
	}
	return &Static{local: local, zones: copied}
}

func (s *Static) LookupByName(name string) (*time.Location, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
	}
	loc, ok := s.zones[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
	}
	return loc, nil
}

func (s *Static) Local() *time.Location {
	if s == nil {
		return time.UTC
	}
	return s.local
}

func (s *Static) FixedOffset(seconds int) *time.Location {
	return fixedOffset(seconds)
}

func (s *Static) OffsetAt(loc *time.Location, at time.Time) time.Duration {
	return offsetAt(loc, at)
}

func (s *Static) NameOf(loc *time.Location, at time.Time) (string, bool) {
	return nameOf(loc, at)
}

// Names returns the zone names known to the database in no particular order.
func (s *Static) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.zones))
	for name := range s.zones {
		out = append(out, name)
	}
	return out
}
