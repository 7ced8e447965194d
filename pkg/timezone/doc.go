// Package timezone normalizes heterogeneous timezone expressions into a
// canonical TimeZone value with a stable display name and an offset evaluated
// on demand.
//
// A Resolver accepts one of five expression shapes, checked in this order:
//
//	Zone(tz)        an already resolved TimeZone, copied verbatim
//	Location(loc)   a native *time.Location, named by its own abbreviation
//	Offset(d)       a signed duration, resolved to an unnamed fixed offset
//	String(s)       "local", "UTC", "+HH:MM"/"-HH:MM", or a zone identifier
//	Absent()        UTC
//
// Anything that does not produce a rule fails with an error matching
// ErrUnrecognizedTimeZone. Offsets are recomputed against the resolver clock
// on every call because named rules may carry daylight saving transitions.
package timezone
