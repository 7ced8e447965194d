// Package tzresolve exposes the timezone resolver through a small top-level
// API. Callers that need custom databases, clocks or formatting should build a
// resolver with NewResolver; the package level helpers use the system
// database and wall clock.
package tzresolve

import (
	"github.com/goliatone/go-tzresolve/pkg/timezone"
	"github.com/goliatone/go-tzresolve/pkg/tzdb"
)

// TimeZone is the canonical resolved zone.
type TimeZone = timezone.TimeZone

// Expr is a timezone expression accepted by Resolve.
type Expr = timezone.Expr

// Resolver aliases timezone.Resolver for callers configuring their own
// instance.
type Resolver = timezone.Resolver

// Database aliases tzdb.Database, the rule provider a resolver depends on.
type Database = tzdb.Database

// UnrecognizedTimeZoneError is returned when an expression produces no rule.
type UnrecognizedTimeZoneError = timezone.UnrecognizedTimeZoneError

// ErrUnrecognizedTimeZone is matched by every resolution failure.
var ErrUnrecognizedTimeZone = timezone.ErrUnrecognizedTimeZone

// NewResolver exposes the resolver constructor from the top-level module.
func NewResolver(options ...timezone.OptionFn) *Resolver {
	return timezone.NewResolver(options...)
}

// Resolve converts expr with the default resolver.
func Resolve(expr Expr) (TimeZone, error) {
	return timezone.Default().Resolve(expr)
}

// ResolveString resolves "local", "UTC", "+HH:MM"/"-HH:MM" or a zone
// identifier with the default resolver.
func ResolveString(text string) (TimeZone, error) {
	return timezone.Default().ResolveString(text)
}

// ResolveValue resolves a TimeZone, *time.Location, time.Duration, string or
// nil with the default resolver.
func ResolveValue(value any) (TimeZone, error) {
	return timezone.Default().ResolveValue(value)
}

// MustResolveString is like ResolveString but panics on failure.
func MustResolveString(text string) TimeZone {
	return timezone.Default().MustResolve(timezone.String(text))
}

// UTC returns the canonical UTC zone.
func UTC() TimeZone {
	return timezone.Default().MustResolve(timezone.Absent())
}

// Local returns the host zone, named "local".
func Local() TimeZone {
	return timezone.Default().MustResolve(timezone.String("local"))
}
