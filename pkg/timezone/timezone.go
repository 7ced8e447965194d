package timezone

import (
	"time"

	"github.com/goliatone/go-tzresolve/pkg/tzdb"
)

// TimeZone is the canonical, immutable result of a resolution. The zero value
// behaves as an unnamed UTC zone but is never returned by Resolve.
type TimeZone struct {
	loc   *time.Location
	name  string
	named bool
	env   *environment
}

// environment is the read-only context a TimeZone was resolved with.
type environment struct {
	db     tzdb.Database
	now    func() time.Time
	format formatOptions
}

var defaultEnv = newEnvironment(DefaultOptions())

func newEnvironment(opts Options) *environment {
	return &environment{
		db:  opts.Database,
		now: opts.Clock,
		format: formatOptions{
			mode:        opts.EmptyNameMode,
			placeholder: opts.NamePlaceholder,
		},
	}
}

func (tz TimeZone) environment() *environment {
	if tz.env == nil {
		return defaultEnv
	}
	return tz.env
}

// Location returns the underlying rule.
func (tz TimeZone) Location() *time.Location {
	if tz.loc == nil {
		return time.UTC
	}
	return tz.loc
}

// Name returns the display name and whether one is present.
func (tz TimeZone) Name() (string, bool) {
	return tz.name, tz.named
}

// Offset returns the offset from UTC at the current instant.
func (tz TimeZone) Offset() time.Duration {
	env := tz.environment()
	return env.db.OffsetAt(tz.Location(), env.now())
}

// OffsetAt returns the offset from UTC at the given instant.
func (tz TimeZone) OffsetAt(at time.Time) time.Duration {
	return tz.environment().db.OffsetAt(tz.Location(), at)
}

// IsUTC reports whether the current offset is exactly zero.
func (tz TimeZone) IsUTC() bool {
	return tz.Offset() == 0
}

// In returns t expressed in the zone.
func (tz TimeZone) In(t time.Time) time.Time {
	return t.In(tz.Location())
}

// Now returns the current instant of the resolver clock in the zone.
func (tz TimeZone) Now() time.Time {
	return tz.In(tz.environment().now())
}

// Equal reports whether both values share the same rule and display name.
func (tz TimeZone) Equal(other TimeZone) bool {
	return tz.Location() == other.Location() && tz.named == other.named && tz.name == other.name
}

// String renders the zone as "+HH:MM (name)".
func (tz TimeZone) String() string {
	return formatZone(tz.Offset(), tz.name, tz.named, tz.environment().format)
}

func (tz TimeZone) GoString() string {
	return "TimeZone(" + tz.String() + ")"
}
